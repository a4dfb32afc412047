package trajectplan

import "context"

// FieldsRepo persists the reconciled field record per subject.
type FieldsRepo interface {
	Upsert(ctx context.Context, record FieldRecord) error
	GetBySubject(ctx context.Context, subjectId string) (FieldRecord, error)
}
