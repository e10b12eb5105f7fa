package resumes

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumelens-backend/internal/analyses"
	"resumelens-backend/internal/extract"
	"resumelens-backend/internal/jobapplications"
	"resumelens-backend/internal/shared/server/respond"
)

// Handler serves the upload and generate-improved endpoints.
type Handler struct {
	Service        *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(service *Service, maxUploadBytes int64) *Handler {
	return &Handler{Service: service, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/upload", h.upload)
	rg.POST("/resumes/:resumeId/generate-improved", h.generateImproved)
}

type uploadResponse struct {
	ResumeID            string                       `json:"resumeId"`
	AnalysisID          string                       `json:"analysisId"`
	JobApplicationID    string                       `json:"jobApplicationId,omitempty"`
	Analysis            uploadAnalysis               `json:"analysis"`
	ExtractedData       analyses.ExtractedData       `json:"extractedData"`
	JobTargetedAnalysis *jobapplications.MatchResult `json:"jobTargetedAnalysis,omitempty"`
}

// uploadAnalysis mirrors the stored Analysis but surfaces the overall score
// as a number, matching the rest of the score fields in the response.
type uploadAnalysis struct {
	OverallScore float64                    `json:"overallScore"`
	Scores       analyses.Scores            `json:"scores"`
	Feedback     []analyses.FeedbackSection `json:"feedback"`
	Skills       analyses.SkillsSummary     `json:"skills"`
}

type improvedResponse struct {
	JobApplicationID      string `json:"jobApplicationId"`
	ImprovedResumeContent string `json:"improvedResumeContent"`
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "no_file", "No file uploaded")
		return
	}
	if fileHeader.Size > h.MaxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "file_too_large",
			fmt.Sprintf("File too large, maximum size is %d bytes", h.MaxUploadBytes))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to read uploaded file")
		return
	}

	result, err := h.Service.Upload(c.Request.Context(), UploadInput{
		Filename:       fileHeader.Filename,
		Data:           data,
		JobDescription: c.PostForm("jobDescription"),
		TargetRole:     c.PostForm("targetRole"),
	})
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			respond.Error(c, http.StatusBadRequest, "unsupported_format", err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "upload_failed", err.Error())
		return
	}

	c.Set("resumeId", result.Resume.ID)
	c.Set("analysisId", result.Analysis.ID)

	resp := uploadResponse{
		ResumeID:   result.Resume.ID,
		AnalysisID: result.Analysis.ID,
		Analysis: uploadAnalysis{
			OverallScore: result.Result.OverallScore,
			Scores:       result.Analysis.Scores,
			Feedback:     result.Analysis.Feedback,
			Skills:       result.Analysis.Skills,
		},
		ExtractedData: result.Result.ExtractedData,
	}
	if result.JobApplication != nil {
		resp.JobApplicationID = result.JobApplication.ID
		resp.JobTargetedAnalysis = result.Match
	}
	respond.OK(c, resp)
}

func (h *Handler) generateImproved(c *gin.Context) {
	resumeID := c.Param("resumeId")
	c.Set("resumeId", resumeID)

	app, err := h.Service.GenerateImproved(c.Request.Context(), resumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Resume not found")
		case errors.Is(err, ErrJobAnalysisMissing):
			respond.Error(c, http.StatusBadRequest, "job_analysis_missing", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "generate_failed", "Failed to generate improved resume")
		}
		return
	}

	respond.OK(c, improvedResponse{
		JobApplicationID:      app.ID,
		ImprovedResumeContent: app.ImprovedResumeContent,
	})
}
