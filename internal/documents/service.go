package documents

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"trajectplan-backend/internal/shared/storage/object"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  DocumentsRepo
}

// Upload saves the file to object storage and records the document.
func (s *Service) Upload(ctx context.Context, subjectId, fileName, category string, r io.Reader) (Document, error) {
	if subjectId == "" || fileName == "" {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, subjectId, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		SubjectID:  subjectId,
		FileName:   fileName,
		Category:   normalizeCategory(category),
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageRef: storageKey,
		UploadedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// List returns the subject's documents, newest first.
func (s *Service) List(ctx context.Context, subjectId string) ([]Document, error) {
	if subjectId == "" {
		return nil, errors.New("subject id required")
	}
	return s.Repo.ListBySubject(ctx, subjectId)
}

// normalizeCategory lowercases the free-form label; empty becomes "other".
func normalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return "other"
	}
	return category
}
