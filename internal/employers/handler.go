package employers

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

// RegisterRoutes attaches employer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/employers", h.create)
	rg.GET("/employers", h.list)
}

type createRequest struct {
	Name         string `json:"name"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
}

// EmployerResponse is the outward-facing representation of an employer.
type EmployerResponse struct {
	EmployerID   string `json:"employerId"`
	Name         string `json:"name"`
	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

func toResponse(employer Employer) EmployerResponse {
	return EmployerResponse{
		EmployerID:   employer.ID,
		Name:         employer.Name,
		ContactName:  employer.ContactName,
		ContactEmail: employer.ContactEmail,
		CreatedAt:    employer.CreatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	employer, err := h.Svc.Create(c.Request.Context(), req.Name, req.ContactName, req.ContactEmail)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create employer", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(employer))
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list employers", nil)
		return
	}

	out := make([]EmployerResponse, 0, len(list))
	for _, employer := range list {
		out = append(out, toResponse(employer))
	}
	respond.OK(c, gin.H{"employers": out})
}
