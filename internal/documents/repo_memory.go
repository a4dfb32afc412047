package documents

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of DocumentsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Document // subjectId -> documents
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Document),
	}
}

// Create stores a document for a subject.
func (r *MemoryRepo) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[doc.SubjectID] = append(r.data[doc.SubjectID], doc)
	return nil
}

// GetByID returns a document by ID for a subject.
func (r *MemoryRepo) GetByID(ctx context.Context, subjectId, documentID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	docs := r.data[subjectId]
	for i := range docs {
		if docs[i].ID == documentID {
			return docs[i], nil
		}
	}
	return Document{}, ErrNotFound
}

// ListBySubject returns documents for a subject, newest first.
func (r *MemoryRepo) ListBySubject(ctx context.Context, subjectId string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	subjectDocs := r.data[subjectId]
	r.mu.RUnlock()

	docs := make([]Document, len(subjectDocs))
	copy(docs, subjectDocs)
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].UploadedAt.After(docs[j].UploadedAt)
	})

	return docs, nil
}

var _ DocumentsRepo = (*MemoryRepo)(nil)
