package portfolios

import (
	"context"
	"sync"
)

// MemoryRepo stores portfolios in memory and is safe for concurrent use.
// Lookup by resume returns the first portfolio created for that resume.
type MemoryRepo struct {
	mu       sync.RWMutex
	byID     map[string]Portfolio
	byResume map[string]string // resumeId -> first portfolioId
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:     make(map[string]Portfolio),
		byResume: make(map[string]string),
	}
}

// Create stores the portfolio.
func (r *MemoryRepo) Create(ctx context.Context, portfolio Portfolio) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[portfolio.ID] = portfolio
	if _, ok := r.byResume[portfolio.ResumeID]; !ok {
		r.byResume[portfolio.ResumeID] = portfolio.ID
	}
	return nil
}

// GetByID returns a portfolio by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, portfolioID string) (Portfolio, error) {
	if err := ctx.Err(); err != nil {
		return Portfolio{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	portfolio, ok := r.byID[portfolioID]
	if !ok {
		return Portfolio{}, ErrNotFound
	}
	return portfolio, nil
}

// GetByResumeID returns the first portfolio created for the resume.
func (r *MemoryRepo) GetByResumeID(ctx context.Context, resumeID string) (Portfolio, error) {
	if err := ctx.Err(); err != nil {
		return Portfolio{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	portfolioID, ok := r.byResume[resumeID]
	if !ok {
		return Portfolio{}, ErrNotFound
	}
	return r.byID[portfolioID], nil
}
