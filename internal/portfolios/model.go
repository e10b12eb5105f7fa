package portfolios

import "time"

// Portfolio is a generated portfolio site record built from resume data the
// client supplies. Immutable after creation.
type Portfolio struct {
	ID         string        `json:"id"`
	ResumeID   string        `json:"resumeId"`
	TemplateID string        `json:"templateId"`
	Data       PortfolioData `json:"data"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// PortfolioData is the content block rendered into the portfolio template.
type PortfolioData struct {
	Name       string           `json:"name" binding:"required"`
	Title      string           `json:"title" binding:"required"`
	Bio        string           `json:"bio" binding:"required"`
	Skills     []string         `json:"skills" binding:"required"`
	Experience []ExperienceItem `json:"experience" binding:"required"`
	Education  []EducationItem  `json:"education" binding:"required"`
	Projects   []ProjectItem    `json:"projects,omitempty"`
}

type ExperienceItem struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type EducationItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

type ProjectItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}
