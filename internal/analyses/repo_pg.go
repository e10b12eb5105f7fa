package analyses

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

// Create inserts a new analysis. The unique index on resume_id enforces
// at most one analysis per resume.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (id, resume_id, overall_score, scores, feedback, skills, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	scores, err := json.Marshal(analysis.Scores)
	if err != nil {
		return err
	}
	feedback, err := json.Marshal(analysis.Feedback)
	if err != nil {
		return err
	}
	skills, err := json.Marshal(analysis.Skills)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		analysis.ResumeID,
		analysis.OverallScore,
		scores,
		feedback,
		skills,
		analysis.CreatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "analyses_resume_id_key") {
		return ErrAlreadyExists
	}
	return err
}

// GetByID returns an analysis by its ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT id, resume_id, overall_score, scores, feedback, skills, created_at
FROM analyses
WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, analysisID))
}

// GetByResumeID returns the analysis linked to a resume.
func (r *PGRepo) GetByResumeID(ctx context.Context, resumeID string) (Analysis, error) {
	const query = `
SELECT id, resume_id, overall_score, scores, feedback, skills, created_at
FROM analyses
WHERE resume_id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, resumeID))
}

func (r *PGRepo) scanOne(row *sql.Row) (Analysis, error) {
	var analysis Analysis
	var scores, feedback, skills []byte
	err := row.Scan(
		&analysis.ID,
		&analysis.ResumeID,
		&analysis.OverallScore,
		&scores,
		&feedback,
		&skills,
		&analysis.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	if err := json.Unmarshal(scores, &analysis.Scores); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal(feedback, &analysis.Feedback); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal(skills, &analysis.Skills); err != nil {
		return Analysis{}, err
	}
	return analysis, nil
}
