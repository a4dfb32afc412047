package documents

import "context"

// DocumentsRepo defines persistence operations for documents.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, subjectId, documentID string) (Document, error)
	ListBySubject(ctx context.Context, subjectId string) ([]Document, error)
}
