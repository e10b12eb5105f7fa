package analyses

import "time"

// Analysis is the stored quality assessment for one resume.
// OverallScore is serialized as text in storage; responses surface numbers.
type Analysis struct {
	ID           string            `json:"id"`
	ResumeID     string            `json:"resumeId"`
	OverallScore string            `json:"overallScore"`
	Scores       Scores            `json:"scores"`
	Feedback     []FeedbackSection `json:"feedback"`
	Skills       SkillsSummary     `json:"skills"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// Scores breaks the overall score into the four rated dimensions.
type Scores struct {
	Content    float64 `json:"content"`
	Skills     float64 `json:"skills"`
	Impact     float64 `json:"impact"`
	Formatting float64 `json:"formatting"`
}

// FeedbackSection is per-section feedback from the evaluator.
type FeedbackSection struct {
	Section     string          `json:"section"`
	Score       float64         `json:"score"`
	Points      []FeedbackPoint `json:"points"`
	Suggestions []string        `json:"suggestions"`
}

// FeedbackPoint is a single remark, typed "success" or "warning".
type FeedbackPoint struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SkillsSummary lists skills found on the resume and recommended additions.
type SkillsSummary struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// Result is the fully-populated evaluator output for one analysis request.
type Result struct {
	OverallScore  float64           `json:"overallScore"`
	Scores        Scores            `json:"scores"`
	Feedback      []FeedbackSection `json:"feedback"`
	Skills        SkillsSummary     `json:"skills"`
	ExtractedData ExtractedData     `json:"extractedData"`
}

// ExtractedData holds structured fields the evaluator pulled from the resume.
// It is returned in the upload response and never persisted.
type ExtractedData struct {
	Name       string           `json:"name"`
	Title      string           `json:"title"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	Projects   []ProjectItem    `json:"projects"`
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
