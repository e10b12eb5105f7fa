package analyses

import "errors"

var (
	ErrNotFound      = errors.New("analysis not found")
	ErrAlreadyExists = errors.New("analysis already exists for resume")
)
