package jobapplications

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumelens-backend/internal/shared/server/respond"
)

// Handler serves stored job applications.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches job-application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:resumeId/job-application", h.getByResume)
}

func (h *Handler) getByResume(c *gin.Context) {
	resumeID := c.Param("resumeId")
	c.Set("resumeId", resumeID)

	app, err := h.Repo.GetByResumeID(c.Request.Context(), resumeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Job application not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to retrieve job application")
		return
	}

	respond.OK(c, app)
}
