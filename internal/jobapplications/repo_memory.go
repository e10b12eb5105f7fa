package jobapplications

import (
	"context"
	"sync"
)

// MemoryRepo stores job applications in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	byID     map[string]JobApplication
	byResume map[string]string // resumeId -> jobApplicationId
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:     make(map[string]JobApplication),
		byResume: make(map[string]string),
	}
}

// Create stores the job application. At most one may exist per resume.
func (r *MemoryRepo) Create(ctx context.Context, app JobApplication) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byResume[app.ResumeID]; ok {
		return ErrAlreadyExists
	}
	r.byID[app.ID] = app
	r.byResume[app.ResumeID] = app.ID
	return nil
}

// GetByID returns a job application by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, appID string) (JobApplication, error) {
	if err := ctx.Err(); err != nil {
		return JobApplication{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.byID[appID]
	if !ok {
		return JobApplication{}, ErrNotFound
	}
	return app, nil
}

// GetByResumeID returns the job application linked to a resume.
func (r *MemoryRepo) GetByResumeID(ctx context.Context, resumeID string) (JobApplication, error) {
	if err := ctx.Err(); err != nil {
		return JobApplication{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	appID, ok := r.byResume[resumeID]
	if !ok {
		return JobApplication{}, ErrNotFound
	}
	return r.byID[appID], nil
}

// Update merges the provided fields into an existing record, preserving its
// identifier and creation timestamp.
func (r *MemoryRepo) Update(ctx context.Context, appID string, update Update) (JobApplication, error) {
	if err := ctx.Err(); err != nil {
		return JobApplication{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.byID[appID]
	if !ok {
		return JobApplication{}, ErrNotFound
	}
	if update.ImprovedResumeContent != nil {
		app.ImprovedResumeContent = *update.ImprovedResumeContent
	}
	if update.MatchScore != nil {
		app.MatchScore = *update.MatchScore
	}
	if update.RecommendedChanges != nil {
		changes := *update.RecommendedChanges
		app.RecommendedChanges = &changes
	}
	r.byID[appID] = app
	return app, nil
}
