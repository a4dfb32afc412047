package trajectplan

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"trajectplan-backend/internal/documents"
	"trajectplan-backend/internal/extract"
	"trajectplan-backend/internal/llm"
	"trajectplan-backend/internal/shared/metrics"
	"trajectplan-backend/internal/shared/storage/object"
	"trajectplan-backend/internal/shared/telemetry"
)

const downloadConcurrency = 4

// Service runs the report pipeline: select documents, extract text, chunk,
// complete, reconcile, persist.
type Service struct {
	Docs      documents.DocumentsRepo
	Store     object.ObjectStore
	Fields    FieldsRepo
	LLM       llm.Client
	Bucket    string
	MinUsable int
	MaxChunk  int
}

// sourceText is one document's extracted text, tagged for labeling.
type sourceText struct {
	category string
	fileName string
	text     string
}

// RunSection executes the pipeline for one section of a subject's report.
//
// Three shapes come back: a Done result with fields, an Empty result with a
// reason (no documents, or none readable), or an error when the completion
// call fails. Per-document problems are downgraded to warnings; persistence
// is best-effort and never erases a computed result.
func (s *Service) RunSection(ctx context.Context, subjectId, sectionName string) (SectionResult, error) {
	section, ok := SectionByName(sectionName)
	if !ok {
		return SectionResult{}, fmt.Errorf("%w: %q", ErrUnknownSection, sectionName)
	}

	metrics.IncSectionStarted()
	start := time.Now()
	defer func() {
		metrics.ObserveSectionDurationMs(float64(time.Since(start).Milliseconds()))
	}()

	result := SectionResult{Section: section.Name}

	docs, err := s.Docs.ListBySubject(ctx, subjectId)
	if err != nil {
		metrics.IncSectionFailed()
		return SectionResult{}, fmt.Errorf("list documents: %w", err)
	}

	selected := Select(docs, section.WantedCategories)
	if len(selected) == 0 {
		metrics.IncSectionEmpty()
		result.Outcome = OutcomeEmpty
		result.EmptyReason = ReasonNoDocuments
		telemetry.Info("pipeline.section.empty", map[string]any{
			"subject_id": subjectId,
			"section":    section.Name,
			"reason":     result.EmptyReason,
		})
		return result, nil
	}

	sources, warnings := s.extractAll(ctx, subjectId, selected)
	result.Warnings = warnings
	if len(sources) == 0 {
		metrics.IncSectionEmpty()
		result.Outcome = OutcomeEmpty
		result.EmptyReason = ReasonNoExtractableTxt
		telemetry.Warn("pipeline.section.empty", map[string]any{
			"subject_id": subjectId,
			"section":    section.Name,
			"reason":     result.EmptyReason,
			"documents":  len(selected),
		})
		return result, nil
	}

	corpus := Chunk(combineSources(sources), s.maxChunk())

	completion, err := s.LLM.Complete(ctx, llm.CompletionInput{
		Prompt: section.Prompt,
		Corpus: corpus,
		Schema: section.Schema,
	})
	if err != nil {
		metrics.IncSectionFailed()
		telemetry.Error("pipeline.section.failed", map[string]any{
			"subject_id": subjectId,
			"section":    section.Name,
			"error":      err.Error(),
		})
		return SectionResult{}, fmt.Errorf("%w: %v", ErrCompletion, err)
	}

	var sectionFields map[string]any
	if section.Schema != nil {
		sectionFields = completion.Fields
		StripFields(sectionFields)
		sectionFields = s.applyAuthoritative(ctx, subjectId, section, sectionFields)
	} else {
		result.Text = Strip(completion.Text)
		sectionFields = map[string]any{section.Name: result.Text}
	}

	result.Outcome = OutcomeDone
	result.Fields = sectionFields
	result.FilledFieldNames = FilledNames(Merge(sectionFields))

	if warning := s.persist(ctx, subjectId, sectionFields); warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	metrics.IncSectionCompleted()
	telemetry.Info("pipeline.section.done", map[string]any{
		"subject_id":    subjectId,
		"section":       section.Name,
		"filled_fields": len(result.FilledFieldNames),
		"warnings":      len(result.Warnings),
	})
	return result, nil
}

// RunAll executes every registered section in order and reports per-section
// outcomes. A failing section does not stop the remaining ones.
func (s *Service) RunAll(ctx context.Context, subjectId string) []SectionResult {
	out := make([]SectionResult, 0, len(sectionRegistry))
	for _, section := range sectionRegistry {
		result, err := s.RunSection(ctx, subjectId, section.Name)
		if err != nil {
			result = SectionResult{
				Section:  section.Name,
				Outcome:  OutcomeFailed,
				Warnings: []string{err.Error()},
			}
		}
		out = append(out, result)
	}
	return out
}

// GetRecord returns the persisted reconciled field record for a subject.
func (s *Service) GetRecord(ctx context.Context, subjectId string) (FieldRecord, error) {
	return s.Fields.GetBySubject(ctx, subjectId)
}

// extractAll downloads and extracts the selected documents. Downloads run
// concurrently; results stay in selection order so category labeling in the
// combined corpus is deterministic. Every per-document failure becomes a
// warning, never an error.
func (s *Service) extractAll(ctx context.Context, subjectId string, selected []documents.Document) ([]sourceText, []string) {
	type slot struct {
		source  sourceText
		warning string
	}
	slots := make([]slot, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(downloadConcurrency)
	for i, doc := range selected {
		i, doc := i, doc
		g.Go(func() error {
			key, ok := object.ResolveKey(s.Bucket, doc.StorageRef)
			if !ok {
				slots[i].warning = fmt.Sprintf("document %s: unresolvable storage reference", doc.ID)
				return nil
			}

			reader, err := s.Store.Open(gctx, key)
			if err != nil {
				slots[i].warning = fmt.Sprintf("document %s: download failed: %v", doc.ID, err)
				return nil
			}
			data, err := io.ReadAll(reader)
			reader.Close()
			if err != nil {
				slots[i].warning = fmt.Sprintf("document %s: read failed: %v", doc.ID, err)
				return nil
			}

			text, strategy := extract.ExtractDetailed(data, s.minUsable())
			if text == "" {
				slots[i].warning = fmt.Sprintf("document %s: no usable text", doc.ID)
				return nil
			}

			telemetry.Info("pipeline.document.extracted", map[string]any{
				"subject_id":  subjectId,
				"document_id": doc.ID,
				"strategy":    strategy,
				"chars":       len(text),
			})
			slots[i].source = sourceText{
				category: doc.Category,
				fileName: doc.FileName,
				text:     text,
			}
			return nil
		})
	}
	// Goroutines only record warnings; the group never returns an error.
	_ = g.Wait()

	var sources []sourceText
	var warnings []string
	for _, sl := range slots {
		if sl.warning != "" {
			metrics.IncDocumentSkipped()
			telemetry.Warn("pipeline.document.skipped", map[string]any{
				"subject_id": subjectId,
				"warning":    sl.warning,
			})
			warnings = append(warnings, sl.warning)
			continue
		}
		sources = append(sources, sl.source)
	}
	return sources, warnings
}

// applyAuthoritative lets on-file values win for the fields the section marks
// authoritative. Freshly generated values win everywhere else.
func (s *Service) applyAuthoritative(ctx context.Context, subjectId string, section SectionConfig, generated map[string]any) map[string]any {
	if len(section.AuthoritativeFields) == 0 {
		return Merge(generated)
	}

	existing, err := s.Fields.GetBySubject(ctx, subjectId)
	if err != nil {
		// No record yet (or unreadable): nothing on file takes precedence.
		return Merge(generated)
	}

	authoritative := make(map[string]any, len(section.AuthoritativeFields))
	for _, name := range section.AuthoritativeFields {
		if value, ok := existing.Fields[name]; ok {
			authoritative[name] = value
		}
	}
	return Merge(authoritative, generated)
}

// persist merges the section's fields into the subject's record and upserts.
// Failure is reported as a warning; the computed result is still returned.
func (s *Service) persist(ctx context.Context, subjectId string, sectionFields map[string]any) string {
	merged := Merge(sectionFields)
	if existing, err := s.Fields.GetBySubject(ctx, subjectId); err == nil {
		merged = Merge(sectionFields, existing.Fields)
	}

	record := FieldRecord{
		SubjectID:    subjectId,
		Fields:       merged,
		FilledFields: FilledNames(merged),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.Fields.Upsert(ctx, record); err != nil {
		telemetry.Warn("pipeline.persist.failed", map[string]any{
			"subject_id": subjectId,
			"error":      err.Error(),
		})
		return fmt.Sprintf("result computed but not saved: %v", err)
	}
	return ""
}

func combineSources(sources []sourceText) string {
	parts := make([]string, 0, len(sources))
	for _, src := range sources {
		header := src.category
		if header == "" {
			header = "document"
		}
		parts = append(parts, fmt.Sprintf("=== %s: %s ===\n%s", strings.ToUpper(header), src.fileName, src.text))
	}
	return strings.Join(parts, "\n\n")
}

func (s *Service) minUsable() int {
	if s.MinUsable > 0 {
		return s.MinUsable
	}
	return extract.DefaultMinUsable
}

func (s *Service) maxChunk() int {
	if s.MaxChunk > 0 {
		return s.MaxChunk
	}
	return 12000
}
