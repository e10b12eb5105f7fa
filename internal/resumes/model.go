package resumes

import "time"

// Resume is an uploaded document reduced to its extracted plain text.
// Immutable after creation.
type Resume struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Content    string    `json:"content"`
	UploadedAt time.Time `json:"uploadedAt"`
}
