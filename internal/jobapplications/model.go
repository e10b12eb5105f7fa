package jobapplications

import "time"

// JobApplication captures one resume-to-job-description comparison and the
// eventually generated improved resume. MatchScore is stored as text like the
// analysis overall score.
type JobApplication struct {
	ID                    string              `json:"id"`
	ResumeID              string              `json:"resumeId"`
	AnalysisID            string              `json:"analysisId,omitempty"`
	JobDescription        string              `json:"jobDescription"`
	TargetRole            string              `json:"targetRole,omitempty"`
	MatchScore            string              `json:"matchScore,omitempty"`
	RecommendedChanges    *RecommendedChanges `json:"recommendedChanges"`
	ImprovedResumeContent string              `json:"improvedResumeContent,omitempty"`
	CreatedAt             time.Time           `json:"createdAt"`
}

// RecommendedChanges groups evaluator recommendations into four categories.
// Empty arrays mean "nothing to recommend", a nil pointer means the match
// evaluation never ran.
type RecommendedChanges struct {
	KeywordOptimization []string `json:"keywordOptimization"`
	ExperienceAlignment []string `json:"experienceAlignment"`
	SkillsHighlight     []string `json:"skillsHighlight"`
	FormatSuggestions   []string `json:"formatSuggestions"`
}

// MatchResult is the fully-populated job-match evaluator output.
type MatchResult struct {
	MatchScore         float64            `json:"matchScore"`
	RecommendedChanges RecommendedChanges `json:"recommendedChanges"`
	MissingSkills      []string           `json:"missingSkills"`
	MatchingSkills     []string           `json:"matchingSkills"`
}

// Update carries the fields a partial update may set. Nil fields are left
// untouched; identifier and creation timestamp are never altered.
type Update struct {
	ImprovedResumeContent *string
	MatchScore            *string
	RecommendedChanges    *RecommendedChanges
}
