package documents

import "time"

// Document represents an uploaded source document owned by a case subject.
// The report pipeline treats these records as read-only input.
type Document struct {
	ID         string
	SubjectID  string
	FileName   string
	Category   string
	MimeType   string
	SizeBytes  int64
	StorageRef string
	UploadedAt time.Time
}
