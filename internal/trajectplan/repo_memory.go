package trajectplan

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of FieldsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]FieldRecord
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]FieldRecord)}
}

// Upsert stores the record, replacing any existing one for the subject.
func (r *MemoryRepo) Upsert(ctx context.Context, record FieldRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[record.SubjectID] = record
	return nil
}

// GetBySubject returns the record for a subject.
func (r *MemoryRepo) GetBySubject(ctx context.Context, subjectId string) (FieldRecord, error) {
	if err := ctx.Err(); err != nil {
		return FieldRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.data[subjectId]
	if !ok {
		return FieldRecord{}, ErrRecordNotFound
	}
	return record, nil
}

var _ FieldsRepo = (*MemoryRepo)(nil)
