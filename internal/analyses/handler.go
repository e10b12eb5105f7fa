package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumelens-backend/internal/shared/server/respond"
)

// Handler serves stored analyses.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:resumeId/analysis", h.getByResume)
}

func (h *Handler) getByResume(c *gin.Context) {
	resumeID := c.Param("resumeId")
	c.Set("resumeId", resumeID)

	analysis, err := h.Repo.GetByResumeID(c.Request.Context(), resumeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Analysis not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to retrieve analysis")
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.OK(c, analysis)
}
