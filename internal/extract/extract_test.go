package extract

import (
	"bytes"
	"strings"
	"testing"
)

func TestExtractPlainTextViaUTF8Scan(t *testing.T) {
	data := []byte("Medewerker is sinds maart gedeeltelijk hersteld en werkt drie dagen per week.")

	text, strategy := ExtractDetailed(data, 20)
	if strategy != "utf8-scan" {
		t.Fatalf("expected utf8-scan, got %q", strategy)
	}
	if !strings.Contains(text, "gedeeltelijk hersteld") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractMalformedPDFFallsThrough(t *testing.T) {
	data := []byte("%PDF-1.4 corrupted body but plenty of printable text to recover here")

	text, strategy := ExtractDetailed(data, 20)
	if strategy != "utf8-scan" {
		t.Fatalf("expected fallback to utf8-scan, got %q", strategy)
	}
	if !strings.Contains(text, "printable text to recover") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractLatin1RecoversAccentedText(t *testing.T) {
	// Latin-1 encoded accented letters break every UTF-8 run below the
	// run-length threshold; the Latin-1 scan keeps them as one run.
	data := []byte("R\xe9a b\xe9c d\xe9e f\xe9g h\xe9i j\xe9k l\xe9m n\xe9o p\xe9q")

	text, strategy := ExtractDetailed(data, 20)
	if strategy != "latin1-scan" {
		t.Fatalf("expected latin1-scan, got %q (text %q)", strategy, text)
	}
	if !strings.Contains(text, "é") {
		t.Fatalf("expected accented letters preserved, got %q", text)
	}
}

func TestExtractLabeledFieldsLastResort(t *testing.T) {
	// Every printable run is shorter than the run threshold, but intact
	// "label: value" pairs survive in the raw decode.
	data := []byte("naam: Jan\x00functie: \x01Lasser\x02datum: \x0305-2024\x04")

	text, strategy := ExtractDetailed(data, 20)
	if strategy != "labeled-fields" {
		t.Fatalf("expected labeled-fields, got %q (text %q)", strategy, text)
	}
	if !strings.Contains(text, "naam: Jan") {
		t.Fatalf("expected naam field in skeleton, got %q", text)
	}
}

func TestExtractTotalFailureReturnsEmpty(t *testing.T) {
	data := bytes.Repeat([]byte{0x00, 0x01, 0x02, 0x03}, 64)

	if text := Extract(data, 20); text != "" {
		t.Fatalf("expected empty result, got %q", text)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	if text := Extract(nil, 20); text != "" {
		t.Fatalf("expected empty result for nil input, got %q", text)
	}
}

func TestExtractThresholdGatesShortOutput(t *testing.T) {
	data := []byte("kort stukje tekst")

	if text := Extract(data, 50); text != "" {
		t.Fatalf("expected short output rejected by threshold, got %q", text)
	}
	if text := Extract(data, 10); text == "" {
		t.Fatal("expected short output accepted with lower threshold")
	}
}

func TestExtractDefaultThreshold(t *testing.T) {
	data := []byte("Voldoende tekst om de standaarddrempel te halen.")

	if text := Extract(data, 0); text == "" {
		t.Fatal("expected default threshold to accept normal prose")
	}
}
