package subjects

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of SubjectsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Subject
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Subject),
	}
}

// Create stores a subject.
func (r *MemoryRepo) Create(ctx context.Context, subject Subject) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[subject.ID] = subject
	return nil
}

// GetByID returns a subject by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Subject, error) {
	if err := ctx.Err(); err != nil {
		return Subject{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	subject, ok := r.data[id]
	if !ok {
		return Subject{}, ErrNotFound
	}
	return subject, nil
}

// List returns subjects, optionally filtered by employer, newest first.
func (r *MemoryRepo) List(ctx context.Context, employerID string) ([]Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Subject, 0, len(r.data))
	for _, subject := range r.data {
		if employerID != "" && subject.EmployerID != employerID {
			continue
		}
		out = append(out, subject)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ SubjectsRepo = (*MemoryRepo)(nil)
