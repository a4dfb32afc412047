package trajectplan

import "errors"

var (
	// ErrUnknownSection is returned when the requested section name has no
	// registered configuration.
	ErrUnknownSection = errors.New("unknown report section")
	// ErrCompletion wraps provider errors and schema-nonconformant responses.
	// Fatal for the invocation; never retried here.
	ErrCompletion = errors.New("completion failed")
	// ErrRecordNotFound is returned when a subject has no persisted field record.
	ErrRecordNotFound = errors.New("report record not found")
)
