package trajectplan

import (
	"strings"
	"testing"
)

func TestChunkRoundTrip(t *testing.T) {
	text := "regel een\nregel twee\nregel drie\nregel vier"
	chunks := Chunk(text, 25)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	joined := strings.Join(chunks, "\n")
	if joined != text {
		t.Fatalf("round trip mismatch:\nwant %q\ngot  %q", text, joined)
	}
	for i, chunk := range chunks {
		if len(chunk) > 25 {
			t.Fatalf("chunk %d exceeds max: %d chars", i, len(chunk))
		}
	}
}

func TestChunkNeverSplitsLines(t *testing.T) {
	long := strings.Repeat("x", 100)
	chunks := Chunk("kort\n"+long+"\nkort", 20)

	found := false
	for _, chunk := range chunks {
		if strings.Contains(chunk, long) {
			found = true
		}
	}
	if !found {
		t.Fatalf("long line was split: %v", chunks)
	}
}

func TestChunkSingleChunkWhenFits(t *testing.T) {
	text := "alles past\nin een stuk"
	chunks := Chunk(text, 1000)
	if len(chunks) != 1 || chunks[0] != text {
		t.Fatalf("expected one identical chunk, got %v", chunks)
	}
}

func TestChunkEmptyInput(t *testing.T) {
	if got := Chunk("   \n  \n", 100); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
}
