package jobapplications

import "context"

// Repo defines persistence operations for job applications.
type Repo interface {
	Create(ctx context.Context, app JobApplication) error
	GetByID(ctx context.Context, appID string) (JobApplication, error)
	GetByResumeID(ctx context.Context, resumeID string) (JobApplication, error)
	Update(ctx context.Context, appID string, update Update) (JobApplication, error)
}
