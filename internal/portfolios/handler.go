package portfolios

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resumelens-backend/internal/resumes"
	"resumelens-backend/internal/shared/server/respond"
)

// Handler serves portfolio creation and retrieval.
type Handler struct {
	Repo    Repo
	Resumes resumes.Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo, resumeRepo resumes.Repo) *Handler {
	return &Handler{Repo: repo, Resumes: resumeRepo}
}

// RegisterRoutes attaches portfolio routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/portfolios", h.create)
	rg.GET("/resumes/:resumeId/portfolio", h.getByResume)
}

type createRequest struct {
	ResumeID   string        `json:"resumeId" binding:"required"`
	TemplateID string        `json:"templateId" binding:"required"`
	Data       PortfolioData `json:"data" binding:"required"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}
	c.Set("resumeId", req.ResumeID)

	// Portfolios must reference an existing resume.
	if _, err := h.Resumes.GetByID(c.Request.Context(), req.ResumeID); err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.Error(c, http.StatusBadRequest, "invalid_resume", "Resume not found")
			return
		}
		respond.Error(c, http.StatusBadRequest, "create_failed", "Failed to create portfolio")
		return
	}

	portfolio := Portfolio{
		ID:         uuid.NewString(),
		ResumeID:   req.ResumeID,
		TemplateID: req.TemplateID,
		Data:       req.Data,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), portfolio); err != nil {
		respond.Error(c, http.StatusBadRequest, "create_failed", "Failed to create portfolio")
		return
	}

	respond.OK(c, portfolio)
}

func (h *Handler) getByResume(c *gin.Context) {
	resumeID := c.Param("resumeId")
	c.Set("resumeId", resumeID)

	portfolio, err := h.Repo.GetByResumeID(c.Request.Context(), resumeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Portfolio not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to retrieve portfolio")
		return
	}

	respond.OK(c, portfolio)
}
