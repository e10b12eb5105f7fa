package resumes

import "errors"

var (
	// ErrNotFound signals an absent resume, never a system failure.
	ErrNotFound = errors.New("resume not found")

	// ErrJobAnalysisMissing rejects improvement generation when no job
	// application (or its recommendations) exists for the resume.
	ErrJobAnalysisMissing = errors.New("Job analysis not found. Please upload your resume with a job description first.")
)
