package jobapplications

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job application. The unique index on resume_id
// enforces at most one per resume.
func (r *PGRepo) Create(ctx context.Context, app JobApplication) error {
	const query = `
INSERT INTO job_applications (id, resume_id, analysis_id, job_description, target_role, match_score, recommended_changes, improved_resume_content, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var analysisID sql.NullString
	if app.AnalysisID != "" {
		analysisID = sql.NullString{String: app.AnalysisID, Valid: true}
	}
	var targetRole sql.NullString
	if app.TargetRole != "" {
		targetRole = sql.NullString{String: app.TargetRole, Valid: true}
	}
	var matchScore sql.NullString
	if app.MatchScore != "" {
		matchScore = sql.NullString{String: app.MatchScore, Valid: true}
	}
	var improved sql.NullString
	if app.ImprovedResumeContent != "" {
		improved = sql.NullString{String: app.ImprovedResumeContent, Valid: true}
	}
	var changes []byte
	if app.RecommendedChanges != nil {
		var err error
		changes, err = json.Marshal(app.RecommendedChanges)
		if err != nil {
			return err
		}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		app.ID,
		app.ResumeID,
		analysisID,
		app.JobDescription,
		targetRole,
		matchScore,
		changes,
		improved,
		app.CreatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "job_applications_resume_id_key") {
		return ErrAlreadyExists
	}
	return err
}

// GetByID returns a job application by its ID.
func (r *PGRepo) GetByID(ctx context.Context, appID string) (JobApplication, error) {
	const query = selectColumns + ` WHERE id = $1`
	return scanOne(r.DB.QueryRowContext(ctx, query, appID))
}

// GetByResumeID returns the job application linked to a resume.
func (r *PGRepo) GetByResumeID(ctx context.Context, resumeID string) (JobApplication, error) {
	const query = selectColumns + ` WHERE resume_id = $1 LIMIT 1`
	return scanOne(r.DB.QueryRowContext(ctx, query, resumeID))
}

// Update merges the provided fields into an existing record and returns the
// stored value. COALESCE keeps columns the caller did not mention.
func (r *PGRepo) Update(ctx context.Context, appID string, update Update) (JobApplication, error) {
	const query = `
UPDATE job_applications
SET improved_resume_content = COALESCE($2, improved_resume_content),
    match_score = COALESCE($3, match_score),
    recommended_changes = COALESCE($4, recommended_changes)
WHERE id = $1`

	var changes any
	if update.RecommendedChanges != nil {
		encoded, err := json.Marshal(update.RecommendedChanges)
		if err != nil {
			return JobApplication{}, err
		}
		changes = encoded
	}

	result, err := r.DB.ExecContext(ctx, query, appID, update.ImprovedResumeContent, update.MatchScore, changes)
	if err != nil {
		return JobApplication{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return JobApplication{}, err
	}
	if affected == 0 {
		return JobApplication{}, ErrNotFound
	}
	return r.GetByID(ctx, appID)
}

const selectColumns = `
SELECT id, resume_id, analysis_id, job_description, target_role, match_score, recommended_changes, improved_resume_content, created_at
FROM job_applications`

func scanOne(row *sql.Row) (JobApplication, error) {
	var app JobApplication
	var analysisID, targetRole, matchScore, improved sql.NullString
	var changes []byte
	err := row.Scan(
		&app.ID,
		&app.ResumeID,
		&analysisID,
		&app.JobDescription,
		&targetRole,
		&matchScore,
		&changes,
		&improved,
		&app.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobApplication{}, ErrNotFound
		}
		return JobApplication{}, err
	}
	if analysisID.Valid {
		app.AnalysisID = analysisID.String
	}
	if targetRole.Valid {
		app.TargetRole = targetRole.String
	}
	if matchScore.Valid {
		app.MatchScore = matchScore.String
	}
	if improved.Valid {
		app.ImprovedResumeContent = improved.String
	}
	if len(changes) > 0 {
		var parsed RecommendedChanges
		if err := json.Unmarshal(changes, &parsed); err != nil {
			return JobApplication{}, err
		}
		app.RecommendedChanges = &parsed
	}
	return app, nil
}
