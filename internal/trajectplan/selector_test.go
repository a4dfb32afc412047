package trajectplan

import (
	"testing"
	"time"

	"trajectplan-backend/internal/documents"
)

func doc(id, category string, uploadedAt time.Time) documents.Document {
	return documents.Document{ID: id, Category: category, UploadedAt: uploadedAt}
}

func TestSelectOrdersByPriority(t *testing.T) {
	now := time.Now()
	docs := []documents.Document{
		doc("d-other", "other", now),
		doc("d-assessment", "assessment", now),
		doc("d-intake", "intake", now),
	}

	got := Select(docs, nil)
	want := []string{"d-intake", "d-assessment", "d-other"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestSelectFiltersByCategory(t *testing.T) {
	now := time.Now()
	docs := []documents.Document{
		doc("d-intake", "intake", now),
		doc("d-assessment", "assessment", now),
		doc("d-other", "other", now),
	}

	got := Select(docs, []string{CategoryAssessment})
	if len(got) != 1 || got[0].ID != "d-assessment" {
		t.Fatalf("expected only the assessment document, got %v", got)
	}
}

func TestSelectMatchesSynonymsSubstring(t *testing.T) {
	now := time.Now()
	docs := []documents.Document{
		doc("d1", "Arbeidsdeskundig rapport 2024", now),
		doc("d2", "FML actueel", now),
		doc("d3", "verslag intakegesprek", now),
	}

	if got := Select(docs, []string{CategoryAssessment}); len(got) != 1 || got[0].ID != "d1" {
		t.Fatalf("assessment synonyms: got %v", got)
	}
	if got := Select(docs, []string{CategoryCapability}); len(got) != 1 || got[0].ID != "d2" {
		t.Fatalf("capability synonyms: got %v", got)
	}
	if got := Select(docs, []string{CategoryIntake}); len(got) != 1 || got[0].ID != "d3" {
		t.Fatalf("intake synonyms: got %v", got)
	}
}

func TestSelectTieBreaksByUploadedAtDesc(t *testing.T) {
	now := time.Now()
	docs := []documents.Document{
		doc("d-old", "intake", now.Add(-time.Hour)),
		doc("d-new", "intake", now),
	}

	got := Select(docs, []string{CategoryIntake})
	if len(got) != 2 || got[0].ID != "d-new" {
		t.Fatalf("expected most recent intake first, got %v", got)
	}
}

func TestSelectUnknownCategorySortsLast(t *testing.T) {
	now := time.Now()
	docs := []documents.Document{
		doc("d-unknown", "vakantieaanvraag", now),
		doc("d-capability", "belastbaarheid", now.Add(-time.Hour)),
	}

	got := Select(docs, nil)
	if got[0].ID != "d-capability" || got[1].ID != "d-unknown" {
		t.Fatalf("expected unknown label last, got %v", got)
	}
}

func TestSelectEmptyResultIsNotError(t *testing.T) {
	if got := Select(nil, []string{CategoryIntake}); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
