package subjects

import "context"

// SubjectsRepo defines persistence operations for case subjects.
type SubjectsRepo interface {
	Create(ctx context.Context, subject Subject) error
	GetByID(ctx context.Context, id string) (Subject, error)
	List(ctx context.Context, employerID string) ([]Subject, error)
}
