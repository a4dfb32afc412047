package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    subject_id,
    file_name,
    category,
    mime_type,
    size_bytes,
    storage_ref,
    uploaded_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	category := doc.Category
	if category == "" {
		category = "other"
	}

	var mimeType sql.NullString
	if doc.MimeType != "" {
		mimeType = sql.NullString{String: doc.MimeType, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.SubjectID,
		doc.FileName,
		category,
		mimeType,
		doc.SizeBytes,
		doc.StorageRef,
		doc.UploadedAt,
	)
	return err
}

// GetByID fetches a document by ID for a subject.
func (r *PGRepo) GetByID(ctx context.Context, subjectId, documentID string) (Document, error) {
	const query = `
SELECT id, subject_id, file_name, category, mime_type, size_bytes, storage_ref, uploaded_at
FROM documents
WHERE subject_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, subjectId, documentID)
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// ListBySubject lists documents for a subject, newest first.
func (r *PGRepo) ListBySubject(ctx context.Context, subjectId string) ([]Document, error) {
	const query = `
SELECT id, subject_id, file_name, category, mime_type, size_bytes, storage_ref, uploaded_at
FROM documents
WHERE subject_id = $1 AND deleted_at IS NULL
ORDER BY uploaded_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, subjectId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var mimeType sql.NullString
	if err := row.Scan(
		&doc.ID,
		&doc.SubjectID,
		&doc.FileName,
		&doc.Category,
		&mimeType,
		&doc.SizeBytes,
		&doc.StorageRef,
		&doc.UploadedAt,
	); err != nil {
		return Document{}, err
	}
	if mimeType.Valid {
		doc.MimeType = mimeType.String
	}
	return doc, nil
}

var _ DocumentsRepo = (*PGRepo)(nil)
