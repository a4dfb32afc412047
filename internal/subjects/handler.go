package subjects

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trajectplan-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches subject routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/subjects", h.create)
	rg.GET("/subjects/:id", h.get)
	rg.GET("/subjects", h.list)
}

type createRequest struct {
	EmployerID    string `json:"employerId"`
	FullName      string `json:"fullName"`
	DateOfBirth   string `json:"dateOfBirth"`
	FunctionTitle string `json:"functionTitle"`
	FirstSickDay  string `json:"firstSickDay"`
}

// SubjectResponse is the outward-facing representation of a subject.
type SubjectResponse struct {
	SubjectID     string `json:"subjectId"`
	EmployerID    string `json:"employerId,omitempty"`
	FullName      string `json:"fullName"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	FunctionTitle string `json:"functionTitle,omitempty"`
	FirstSickDay  string `json:"firstSickDay,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

func toResponse(subject Subject) SubjectResponse {
	resp := SubjectResponse{
		SubjectID:     subject.ID,
		EmployerID:    subject.EmployerID,
		FullName:      subject.FullName,
		FunctionTitle: subject.FunctionTitle,
		CreatedAt:     subject.CreatedAt.Format(time.RFC3339),
	}
	if subject.DateOfBirth != nil {
		resp.DateOfBirth = subject.DateOfBirth.Format("2006-01-02")
	}
	if subject.FirstSickDay != nil {
		resp.FirstSickDay = subject.FirstSickDay.Format("2006-01-02")
	}
	return resp
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "dateOfBirth must be YYYY-MM-DD", nil)
		return
	}
	firstSickDay, err := parseDate(req.FirstSickDay)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "firstSickDay must be YYYY-MM-DD", nil)
		return
	}

	subject, err := h.Svc.Create(c.Request.Context(), CreateInput{
		EmployerID:    req.EmployerID,
		FullName:      req.FullName,
		DateOfBirth:   dateOfBirth,
		FunctionTitle: req.FunctionTitle,
		FirstSickDay:  firstSickDay,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "fullName is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create subject", nil)
		}
		return
	}

	c.Set("subjectId", subject.ID)
	respond.JSON(c, http.StatusCreated, toResponse(subject))
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("subjectId", id)

	subject, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "subject not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "subject id is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch subject", nil)
		}
		return
	}

	respond.OK(c, toResponse(subject))
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), c.Query("employerId"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list subjects", nil)
		return
	}

	out := make([]SubjectResponse, 0, len(list))
	for _, subject := range list {
		out = append(out, toResponse(subject))
	}
	respond.OK(c, gin.H{"subjects": out})
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
