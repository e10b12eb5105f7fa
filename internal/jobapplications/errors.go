package jobapplications

import "errors"

var (
	ErrNotFound      = errors.New("job application not found")
	ErrAlreadyExists = errors.New("job application already exists for resume")
)
