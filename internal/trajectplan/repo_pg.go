package trajectplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements FieldsRepo using Postgres. Fields and the filled-field
// list are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Upsert writes the record; an existing record for the subject is replaced.
func (r *PGRepo) Upsert(ctx context.Context, record FieldRecord) error {
	const query = `
INSERT INTO report_fields (subject_id, fields, filled_fields, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (subject_id) DO UPDATE
SET fields = EXCLUDED.fields,
    filled_fields = EXCLUDED.filled_fields,
    updated_at = EXCLUDED.updated_at`

	fieldsJSON, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	filled := record.FilledFields
	if filled == nil {
		filled = []string{}
	}
	filledJSON, err := json.Marshal(filled)
	if err != nil {
		return fmt.Errorf("marshal filled fields: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query, record.SubjectID, fieldsJSON, filledJSON, record.UpdatedAt)
	return err
}

// GetBySubject fetches the persisted record for a subject.
func (r *PGRepo) GetBySubject(ctx context.Context, subjectId string) (FieldRecord, error) {
	const query = `
SELECT subject_id, fields, filled_fields, updated_at
FROM report_fields
WHERE subject_id = $1
LIMIT 1`

	var record FieldRecord
	var fieldsJSON, filledJSON []byte
	err := r.DB.QueryRowContext(ctx, query, subjectId).Scan(
		&record.SubjectID,
		&fieldsJSON,
		&filledJSON,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FieldRecord{}, ErrRecordNotFound
		}
		return FieldRecord{}, err
	}

	if err := json.Unmarshal(fieldsJSON, &record.Fields); err != nil {
		return FieldRecord{}, fmt.Errorf("unmarshal fields: %w", err)
	}
	if err := json.Unmarshal(filledJSON, &record.FilledFields); err != nil {
		return FieldRecord{}, fmt.Errorf("unmarshal filled fields: %w", err)
	}
	return record, nil
}

var _ FieldsRepo = (*PGRepo)(nil)
