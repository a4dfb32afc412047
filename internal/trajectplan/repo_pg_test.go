package trajectplan

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	record := FieldRecord{
		SubjectID:    "subj-1",
		Fields:       map[string]any{"naam": "Jan"},
		FilledFields: []string{"naam"},
		UpdatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO report_fields").
		WithArgs(record.SubjectID, []byte(`{"naam":"Jan"}`), []byte(`["naam"]`), record.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Upsert(context.Background(), record); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetBySubject(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"subject_id", "fields", "filled_fields", "updated_at"}).
		AddRow("subj-1", []byte(`{"naam":"Jan","uren_per_week":24}`), []byte(`["naam","uren_per_week"]`), now)

	mock.ExpectQuery("SELECT subject_id, fields, filled_fields").
		WithArgs("subj-1").
		WillReturnRows(rows)

	record, err := repo.GetBySubject(context.Background(), "subj-1")
	if err != nil {
		t.Fatalf("GetBySubject: %v", err)
	}
	if record.Fields["naam"] != "Jan" {
		t.Fatalf("unexpected fields: %v", record.Fields)
	}
	if len(record.FilledFields) != 2 {
		t.Fatalf("unexpected filled fields: %v", record.FilledFields)
	}
}

func TestPGRepoGetBySubjectNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT subject_id, fields, filled_fields").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "fields", "filled_fields", "updated_at"}))

	if _, err := repo.GetBySubject(context.Background(), "missing"); err != ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
