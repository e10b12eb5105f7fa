package analyses

import (
	"context"
	"sync"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	byID     map[string]Analysis
	byResume map[string]string // resumeId -> analysisId
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:     make(map[string]Analysis),
		byResume: make(map[string]string),
	}
}

// Create stores the analysis. At most one analysis may exist per resume.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byResume[analysis.ResumeID]; ok {
		return ErrAlreadyExists
	}
	r.byID[analysis.ID] = analysis
	r.byResume[analysis.ResumeID] = analysis.ID
	return nil
}

// GetByID returns an analysis by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byID[analysisID]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// GetByResumeID returns the analysis linked to a resume.
func (r *MemoryRepo) GetByResumeID(ctx context.Context, resumeID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysisID, ok := r.byResume[resumeID]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return r.byID[analysisID], nil
}
