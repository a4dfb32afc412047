package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trajectplan-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	client := &Client{
		apiKey:     "test-key",
		model:      "gpt-test",
		baseURL:    server.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	return client, server.Close
}

func chatReply(content string) string {
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(reply)
	return string(data)
}

func TestCompleteStructured(t *testing.T) {
	var gotBody chatRequest
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(chatReply(`{"naam":"Jan","uren_per_week":16}`)))
	})
	defer closeFn()

	schema := &llm.Schema{Fields: []llm.Field{
		{Name: "naam", Type: llm.FieldString},
		{Name: "uren_per_week", Type: llm.FieldInt, Min: 0, Max: 40},
	}}

	result, err := client.Complete(context.Background(), llm.CompletionInput{
		Prompt: "Vul de velden in.",
		Corpus: []string{"=== INTAKE ===\nnaam: Jan"},
		Schema: schema,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if result.Fields["naam"] != "Jan" {
		t.Fatalf("naam = %v", result.Fields["naam"])
	}
	if result.Fields["uren_per_week"] != 16 {
		t.Fatalf("uren_per_week = %v", result.Fields["uren_per_week"])
	}
	if gotBody.ResponseFormat == nil || gotBody.ResponseFormat.Type != "json_object" {
		t.Fatal("expected json_object response format for schema requests")
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", gotBody.Messages)
	}
	if !strings.Contains(gotBody.Messages[0].Content, "uren_per_week") {
		t.Fatal("schema field names must appear in system prompt")
	}
}

func TestCompletePlainText(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body chatRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.ResponseFormat != nil {
			t.Error("plain text request must not force json mode")
		}
		w.Write([]byte(chatReply("Betrokkene werkt drie dagen per week.")))
	})
	defer closeFn()

	result, err := client.Complete(context.Background(), llm.CompletionInput{
		Prompt: "Vat samen.",
		Corpus: []string{"tekst"},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if result.Text != "Betrokkene werkt drie dagen per week." {
		t.Fatalf("unexpected text: %q", result.Text)
	}
}

func TestCompleteProviderError(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	})
	defer closeFn()

	_, err := client.Complete(context.Background(), llm.CompletionInput{Prompt: "x", Corpus: []string{"y"}})
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestCompleteSchemaMismatch(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(`{"naam":42}`)))
	})
	defer closeFn()

	schema := &llm.Schema{Fields: []llm.Field{{Name: "naam", Type: llm.FieldString}}}
	_, err := client.Complete(context.Background(), llm.CompletionInput{Prompt: "x", Corpus: []string{"y"}, Schema: schema})
	if err == nil || !strings.Contains(err.Error(), "schema mismatch") {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})
	defer closeFn()

	_, err := client.Complete(context.Background(), llm.CompletionInput{Prompt: "x", Corpus: []string{"y"}})
	if err == nil || !strings.Contains(err.Error(), "missing choices") {
		t.Fatalf("expected missing choices error, got %v", err)
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-test"); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("key", " "); err == nil {
		t.Fatal("expected error for missing model")
	}
}
