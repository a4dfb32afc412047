package employers

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("employer not found")
	ErrInvalidInput = errors.New("invalid employer input")
)

// Employer is a company with one or more case subjects.
type Employer struct {
	ID           string
	Name         string
	ContactName  string
	ContactEmail string
	CreatedAt    time.Time
}

// EmployersRepo defines persistence operations for employers.
type EmployersRepo interface {
	Create(ctx context.Context, employer Employer) error
	List(ctx context.Context) ([]Employer, error)
}

// PGRepo implements EmployersRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, employer Employer) error {
	const query = `
INSERT INTO employers (id, name, contact_name, contact_email, created_at)
VALUES ($1, $2, $3, $4, $5)`

	var contactName, contactEmail sql.NullString
	if employer.ContactName != "" {
		contactName = sql.NullString{String: employer.ContactName, Valid: true}
	}
	if employer.ContactEmail != "" {
		contactEmail = sql.NullString{String: employer.ContactEmail, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, query, employer.ID, employer.Name, contactName, contactEmail, employer.CreatedAt)
	return err
}

func (r *PGRepo) List(ctx context.Context) ([]Employer, error) {
	const query = `
SELECT id, name, contact_name, contact_email, created_at
FROM employers
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employer
	for rows.Next() {
		var employer Employer
		var contactName, contactEmail sql.NullString
		if err := rows.Scan(&employer.ID, &employer.Name, &contactName, &contactEmail, &employer.CreatedAt); err != nil {
			return nil, err
		}
		if contactName.Valid {
			employer.ContactName = contactName.String
		}
		if contactEmail.Valid {
			employer.ContactEmail = contactEmail.String
		}
		out = append(out, employer)
	}
	return out, rows.Err()
}

// MemoryRepo is an in-memory implementation of EmployersRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Employer
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Employer)}
}

func (r *MemoryRepo) Create(ctx context.Context, employer Employer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[employer.ID] = employer
	return nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Employer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Employer, 0, len(r.data))
	for _, employer := range r.data {
		out = append(out, employer)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var (
	_ EmployersRepo = (*PGRepo)(nil)
	_ EmployersRepo = (*MemoryRepo)(nil)
)

// Service contains business logic for employers.
type Service struct {
	Repo EmployersRepo
}

// Create registers a new employer.
func (s *Service) Create(ctx context.Context, name, contactName, contactEmail string) (Employer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Employer{}, ErrInvalidInput
	}

	employer := Employer{
		ID:           uuid.NewString(),
		Name:         name,
		ContactName:  strings.TrimSpace(contactName),
		ContactEmail: strings.TrimSpace(contactEmail),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, employer); err != nil {
		return Employer{}, err
	}
	return employer, nil
}

// List returns all employers, newest first.
func (s *Service) List(ctx context.Context) ([]Employer, error) {
	return s.Repo.List(ctx)
}
