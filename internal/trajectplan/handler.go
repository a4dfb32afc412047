package trajectplan

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trajectplan-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the pipeline service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/subjects/:id/report/sections/:section", h.runSection)
	rg.POST("/subjects/:id/report/generate", h.runAll)
	rg.GET("/subjects/:id/report", h.getRecord)
}

// sectionResponse is the outward shape of one section run.
type sectionResponse struct {
	Section          string         `json:"section"`
	Outcome          string         `json:"outcome"`
	Fields           map[string]any `json:"fields,omitempty"`
	FilledFieldNames []string       `json:"filledFieldNames,omitempty"`
	Text             string         `json:"text,omitempty"`
	Empty            bool           `json:"empty,omitempty"`
	Reason           string         `json:"reason,omitempty"`
	Warnings         []string       `json:"warnings,omitempty"`
}

func toSectionResponse(result SectionResult) sectionResponse {
	return sectionResponse{
		Section:          result.Section,
		Outcome:          string(result.Outcome),
		Fields:           result.Fields,
		FilledFieldNames: result.FilledFieldNames,
		Text:             result.Text,
		Empty:            result.Outcome == OutcomeEmpty,
		Reason:           result.EmptyReason,
		Warnings:         result.Warnings,
	}
}

func (h *Handler) runSection(c *gin.Context) {
	subjectID := c.Param("id")
	sectionName := c.Param("section")
	c.Set("subjectId", subjectID)
	c.Set("sectionName", sectionName)

	result, err := h.Svc.RunSection(c.Request.Context(), subjectID, sectionName)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownSection):
			respond.Error(c, http.StatusNotFound, "not_found", "unknown report section", nil)
		case errors.Is(err, ErrCompletion):
			respond.Error(c, http.StatusBadGateway, "completion_failed", "report generation failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run report section", nil)
		}
		return
	}

	respond.OK(c, toSectionResponse(result))
}

func (h *Handler) runAll(c *gin.Context) {
	subjectID := c.Param("id")
	c.Set("subjectId", subjectID)

	results := h.Svc.RunAll(c.Request.Context(), subjectID)
	out := make([]sectionResponse, 0, len(results))
	for _, result := range results {
		out = append(out, toSectionResponse(result))
	}
	respond.OK(c, gin.H{"sections": out})
}

func (h *Handler) getRecord(c *gin.Context) {
	subjectID := c.Param("id")
	c.Set("subjectId", subjectID)

	record, err := h.Svc.GetRecord(c.Request.Context(), subjectID)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no report record for subject", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch report record", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"subjectId":    record.SubjectID,
		"fields":       record.Fields,
		"filledFields": record.FilledFields,
		"updatedAt":    record.UpdatedAt.Format(time.RFC3339),
	})
}
