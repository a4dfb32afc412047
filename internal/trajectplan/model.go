package trajectplan

import "time"

// FieldRecord is the persisted reconciled field set for a subject. One record
// per subject; each run upserts, last writer wins.
type FieldRecord struct {
	SubjectID    string
	Fields       map[string]any
	FilledFields []string
	UpdatedAt    time.Time
}

// SectionOutcome names the terminal state of one section run.
type SectionOutcome string

const (
	OutcomeDone   SectionOutcome = "done"
	OutcomeEmpty  SectionOutcome = "empty"
	OutcomeFailed SectionOutcome = "failed"
)

// Empty reasons distinguish "nothing to work from" cases.
const (
	ReasonNoDocuments      = "no source documents"
	ReasonNoExtractableTxt = "documents present but no usable text could be extracted"
)

// SectionResult is the outcome of running one section of the report.
type SectionResult struct {
	Section          string
	Outcome          SectionOutcome
	Fields           map[string]any
	FilledFieldNames []string
	// Text holds the prose output of schema-less sections.
	Text string
	// EmptyReason is set when Outcome is OutcomeEmpty.
	EmptyReason string
	// Warnings records skipped documents and best-effort persistence failures.
	Warnings []string
}
