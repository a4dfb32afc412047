package subjects

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for case subjects.
type Service struct {
	Repo SubjectsRepo
}

// CreateInput holds the fields accepted when registering a subject.
type CreateInput struct {
	EmployerID    string
	FullName      string
	DateOfBirth   *time.Time
	FunctionTitle string
	FirstSickDay  *time.Time
}

// Create registers a new case subject.
func (s *Service) Create(ctx context.Context, in CreateInput) (Subject, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	if in.FullName == "" {
		return Subject{}, ErrInvalidInput
	}

	subject := Subject{
		ID:            uuid.NewString(),
		EmployerID:    in.EmployerID,
		FullName:      in.FullName,
		DateOfBirth:   in.DateOfBirth,
		FunctionTitle: strings.TrimSpace(in.FunctionTitle),
		FirstSickDay:  in.FirstSickDay,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, subject); err != nil {
		return Subject{}, err
	}
	return subject, nil
}

// Get fetches a subject by ID.
func (s *Service) Get(ctx context.Context, id string) (Subject, error) {
	if id == "" {
		return Subject{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns subjects, optionally filtered by employer.
func (s *Service) List(ctx context.Context, employerID string) ([]Subject, error) {
	return s.Repo.List(ctx, employerID)
}
