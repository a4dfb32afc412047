package subjects

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements SubjectsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new subject.
func (r *PGRepo) Create(ctx context.Context, subject Subject) error {
	const query = `
INSERT INTO subjects (
    id,
    employer_id,
    full_name,
    date_of_birth,
    function_title,
    first_sick_day,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var employerID sql.NullString
	if subject.EmployerID != "" {
		employerID = sql.NullString{String: subject.EmployerID, Valid: true}
	}
	var functionTitle sql.NullString
	if subject.FunctionTitle != "" {
		functionTitle = sql.NullString{String: subject.FunctionTitle, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		subject.ID,
		employerID,
		subject.FullName,
		subject.DateOfBirth,
		functionTitle,
		subject.FirstSickDay,
		subject.CreatedAt,
	)
	return err
}

// GetByID fetches a subject by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Subject, error) {
	const query = `
SELECT id, employer_id, full_name, date_of_birth, function_title, first_sick_day, created_at
FROM subjects
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id)
	subject, err := scanSubject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subject{}, ErrNotFound
		}
		return Subject{}, err
	}
	return subject, nil
}

// List returns subjects, optionally filtered by employer, newest first.
func (r *PGRepo) List(ctx context.Context, employerID string) ([]Subject, error) {
	const base = `
SELECT id, employer_id, full_name, date_of_birth, function_title, first_sick_day, created_at
FROM subjects`

	var (
		rows *sql.Rows
		err  error
	)
	if employerID != "" {
		rows, err = r.DB.QueryContext(ctx, base+`
WHERE employer_id = $1
ORDER BY created_at DESC`, employerID)
	} else {
		rows, err = r.DB.QueryContext(ctx, base+`
ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Subject
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, subject)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubject(row rowScanner) (Subject, error) {
	var subject Subject
	var employerID, functionTitle sql.NullString
	var dateOfBirth, firstSickDay sql.NullTime
	if err := row.Scan(
		&subject.ID,
		&employerID,
		&subject.FullName,
		&dateOfBirth,
		&functionTitle,
		&firstSickDay,
		&subject.CreatedAt,
	); err != nil {
		return Subject{}, err
	}
	if employerID.Valid {
		subject.EmployerID = employerID.String
	}
	if functionTitle.Valid {
		subject.FunctionTitle = functionTitle.String
	}
	if dateOfBirth.Valid {
		t := dateOfBirth.Time
		subject.DateOfBirth = &t
	}
	if firstSickDay.Valid {
		t := firstSickDay.Time
		subject.FirstSickDay = &t
	}
	return subject, nil
}

var _ SubjectsRepo = (*PGRepo)(nil)
