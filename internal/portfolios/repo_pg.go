package portfolios

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new portfolio.
func (r *PGRepo) Create(ctx context.Context, portfolio Portfolio) error {
	const query = `
INSERT INTO portfolios (id, resume_id, template_id, data, created_at)
VALUES ($1, $2, $3, $4, $5)`

	data, err := json.Marshal(portfolio.Data)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		portfolio.ID,
		portfolio.ResumeID,
		portfolio.TemplateID,
		data,
		portfolio.CreatedAt,
	)
	return err
}

// GetByID returns a portfolio by its ID.
func (r *PGRepo) GetByID(ctx context.Context, portfolioID string) (Portfolio, error) {
	const query = `
SELECT id, resume_id, template_id, data, created_at
FROM portfolios
WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, portfolioID))
}

// GetByResumeID returns the first portfolio created for the resume.
func (r *PGRepo) GetByResumeID(ctx context.Context, resumeID string) (Portfolio, error) {
	const query = `
SELECT id, resume_id, template_id, data, created_at
FROM portfolios
WHERE resume_id = $1
ORDER BY created_at
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, resumeID))
}

func (r *PGRepo) scanOne(row *sql.Row) (Portfolio, error) {
	var portfolio Portfolio
	var data []byte
	err := row.Scan(
		&portfolio.ID,
		&portfolio.ResumeID,
		&portfolio.TemplateID,
		&data,
		&portfolio.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Portfolio{}, ErrNotFound
		}
		return Portfolio{}, err
	}
	if err := json.Unmarshal(data, &portfolio.Data); err != nil {
		return Portfolio{}, err
	}
	return portfolio, nil
}
