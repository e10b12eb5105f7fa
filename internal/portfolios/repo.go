package portfolios

import "context"

// Repo defines persistence operations for portfolios.
type Repo interface {
	Create(ctx context.Context, portfolio Portfolio) error
	GetByID(ctx context.Context, portfolioID string) (Portfolio, error)
	GetByResumeID(ctx context.Context, resumeID string) (Portfolio, error)
}
