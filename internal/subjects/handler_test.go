package subjects

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupHandler(t *testing.T) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := NewMemoryRepo()
	h := NewHandler(&Service{Repo: repo})
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return r, repo
}

func TestCreateSubject(t *testing.T) {
	r, repo := setupHandler(t)

	body := `{"fullName":"Jan de Vries","employerId":"emp-1","dateOfBirth":"1980-03-12","functionTitle":"Lasser","firstSickDay":"2024-05-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/subjects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp SubjectResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.SubjectID == "" {
		t.Fatal("expected subjectId in response")
	}
	if resp.DateOfBirth != "1980-03-12" {
		t.Fatalf("unexpected dateOfBirth %q", resp.DateOfBirth)
	}

	stored, err := repo.GetByID(context.Background(), resp.SubjectID)
	if err != nil {
		t.Fatalf("stored subject: %v", err)
	}
	if stored.FullName != "Jan de Vries" {
		t.Fatalf("unexpected stored name %q", stored.FullName)
	}
}

func TestCreateSubjectMissingName(t *testing.T) {
	r, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subjects", strings.NewReader(`{"fullName":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateSubjectBadDate(t *testing.T) {
	r, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subjects", strings.NewReader(`{"fullName":"Jan","dateOfBirth":"12-03-1980"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetSubjectNotFound(t *testing.T) {
	r, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subjects/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListSubjectsByEmployer(t *testing.T) {
	r, repo := setupHandler(t)

	now := time.Now().UTC()
	seed := []Subject{
		{ID: "s1", EmployerID: "emp-1", FullName: "A", CreatedAt: now.Add(-time.Hour)},
		{ID: "s2", EmployerID: "emp-2", FullName: "B", CreatedAt: now},
		{ID: "s3", EmployerID: "emp-1", FullName: "C", CreatedAt: now},
	}
	for _, subject := range seed {
		if err := repo.Create(context.Background(), subject); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subjects?employerId=emp-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Subjects []SubjectResponse `json:"subjects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Subjects) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(resp.Subjects))
	}
	if resp.Subjects[0].SubjectID != "s3" {
		t.Fatalf("expected newest first, got %s", resp.Subjects[0].SubjectID)
	}
}
