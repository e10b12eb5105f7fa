package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumelens-backend/internal/analyses"
	"resumelens-backend/internal/extract"
	"resumelens-backend/internal/jobapplications"
	"resumelens-backend/internal/llm"
	"resumelens-backend/internal/shared/telemetry"
)

// Service sequences the ingestion pipeline: extraction, resume storage,
// evaluation, analysis storage, and the optional job-match branch. It also
// drives the later generate-improved flow.
//
// Stages run strictly in order. A stage failure is terminal for the request;
// records written by earlier stages are kept (no rollback). That includes the
// job-match branch: its failure fails the whole upload even though the core
// analysis already succeeded.
type Service struct {
	Repo     Repo
	Analyses analyses.Repo
	JobApps  jobapplications.Repo
	LLM      llm.Client
}

// UploadInput carries one upload request.
type UploadInput struct {
	Filename       string
	Data           []byte
	JobDescription string
	TargetRole     string
}

// UploadResult is the assembled outcome of a successful upload.
type UploadResult struct {
	Resume         Resume
	Analysis       analyses.Analysis
	Result         analyses.Result
	JobApplication *jobapplications.JobApplication
	Match          *jobapplications.MatchResult
}

// Upload runs the full ingestion pipeline for one uploaded file.
func (s *Service) Upload(ctx context.Context, input UploadInput) (UploadResult, error) {
	content, err := extract.Extract(input.Data, input.Filename)
	if err != nil {
		return UploadResult{}, err
	}

	resume := Resume{
		ID:         uuid.NewString(),
		Filename:   input.Filename,
		Content:    content,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return UploadResult{}, fmt.Errorf("store resume: %w", err)
	}

	raw, err := s.LLM.AnalyzeResume(ctx, content)
	if err != nil {
		return UploadResult{}, err
	}
	result, err := analyses.NormalizeResult(raw)
	if err != nil {
		return UploadResult{}, err
	}

	analysis := analyses.Analysis{
		ID:           uuid.NewString(),
		ResumeID:     resume.ID,
		OverallScore: formatScore(result.OverallScore),
		Scores:       result.Scores,
		Feedback:     result.Feedback,
		Skills:       result.Skills,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Analyses.Create(ctx, analysis); err != nil {
		return UploadResult{}, fmt.Errorf("store analysis: %w", err)
	}

	out := UploadResult{
		Resume:   resume,
		Analysis: analysis,
		Result:   result,
	}

	if strings.TrimSpace(input.JobDescription) != "" {
		app, match, err := s.matchJob(ctx, resume, analysis, input)
		if err != nil {
			return UploadResult{}, err
		}
		out.JobApplication = app
		out.Match = match
	}

	telemetry.Info("resume.upload.complete", map[string]any{
		"resume_id":      resume.ID,
		"analysis_id":    analysis.ID,
		"job_targeted":   out.JobApplication != nil,
		"content_length": len(content),
		"overall_score":  analysis.OverallScore,
	})
	return out, nil
}

func (s *Service) matchJob(ctx context.Context, resume Resume, analysis analyses.Analysis, input UploadInput) (*jobapplications.JobApplication, *jobapplications.MatchResult, error) {
	raw, err := s.LLM.MatchJob(ctx, llm.MatchInput{
		ResumeText:     resume.Content,
		JobDescription: input.JobDescription,
		TargetRole:     input.TargetRole,
	})
	if err != nil {
		return nil, nil, err
	}
	match, err := jobapplications.NormalizeMatch(raw)
	if err != nil {
		return nil, nil, err
	}

	changes := match.RecommendedChanges
	app := jobapplications.JobApplication{
		ID:                 uuid.NewString(),
		ResumeID:           resume.ID,
		AnalysisID:         analysis.ID,
		JobDescription:     input.JobDescription,
		TargetRole:         input.TargetRole,
		MatchScore:         formatScore(match.MatchScore),
		RecommendedChanges: &changes,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.JobApps.Create(ctx, app); err != nil {
		return nil, nil, fmt.Errorf("store job application: %w", err)
	}
	return &app, &match, nil
}

// GenerateImproved rewrites the stored resume against the job application's
// recommendations and persists the result. An empty rewrite falls back to the
// original resume text so the stored content is never emptied.
func (s *Service) GenerateImproved(ctx context.Context, resumeID string) (jobapplications.JobApplication, error) {
	resume, err := s.Repo.GetByID(ctx, resumeID)
	if err != nil {
		return jobapplications.JobApplication{}, err
	}

	app, err := s.JobApps.GetByResumeID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, jobapplications.ErrNotFound) {
			return jobapplications.JobApplication{}, ErrJobAnalysisMissing
		}
		return jobapplications.JobApplication{}, err
	}
	if app.RecommendedChanges == nil {
		return jobapplications.JobApplication{}, ErrJobAnalysisMissing
	}

	changes, err := json.Marshal(app.RecommendedChanges)
	if err != nil {
		return jobapplications.JobApplication{}, err
	}

	improved, err := s.LLM.RewriteResume(ctx, llm.RewriteInput{
		ResumeText:         resume.Content,
		JobDescription:     app.JobDescription,
		TargetRole:         app.TargetRole,
		RecommendedChanges: changes,
	})
	if err != nil {
		return jobapplications.JobApplication{}, err
	}
	if strings.TrimSpace(improved) == "" {
		improved = resume.Content
	}

	updated, err := s.JobApps.Update(ctx, app.ID, jobapplications.Update{
		ImprovedResumeContent: &improved,
	})
	if err != nil {
		return jobapplications.JobApplication{}, fmt.Errorf("store improved resume: %w", err)
	}

	telemetry.Info("resume.improve.complete", map[string]any{
		"resume_id":          resumeID,
		"job_application_id": updated.ID,
		"content_length":     len(improved),
	})
	return updated, nil
}

// formatScore renders a numeric score the way it is stored: as text.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
