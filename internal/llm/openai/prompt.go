package openai

import (
	"fmt"
	"strings"

	"resumelens-backend/internal/llm"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const analyzeSystemPrompt = `You are an expert resume analyzer and career coach. Analyze the given resume comprehensively and provide:
1. Overall score (0-100)
2. Detailed scores for: content quality, skills relevance, impact/achievements, and formatting
3. Section-by-section feedback with specific points (mark each as "success" or "warning")
4. Actionable suggestions for improvement
5. Skills analysis (present skills and recommended missing skills for modern job market)
6. Extracted structured data (name, title, contact, experience, education, projects)

Be honest, constructive, and specific. Focus on helping the candidate improve their resume to land better opportunities.

Respond with a JSON object matching this structure:
{
  "overallScore": number,
  "scores": {"content": number, "skills": number, "impact": number, "formatting": number},
  "feedback": [{"section": string, "score": number, "points": [{"type": "success" | "warning", "text": string}], "suggestions": [string]}],
  "skills": {"present": [string], "missing": [string]},
  "extractedData": {
    "name": string, "title": string, "email": string, "phone": string,
    "experience": [{"company": string, "role": string, "duration": string, "description": string}],
    "education": [{"institution": string, "degree": string, "year": string}],
    "projects": [{"name": string, "description": string, "link": string}]
  }
}`

const matchSystemPrompt = `You are an expert career coach and recruiter. Compare the given resume against the job description and provide:
1. A match score (0-100) for how well the resume fits the role
2. Recommended changes grouped into four categories: keyword optimization, experience alignment, skills to highlight, and format suggestions
3. Skills required by the job that are missing from the resume, and skills that match

Be specific and actionable. Respond with a JSON object matching this structure:
{
  "matchScore": number,
  "recommendedChanges": {
    "keywordOptimization": [string],
    "experienceAlignment": [string],
    "skillsHighlight": [string],
    "formatSuggestions": [string]
  },
  "missingSkills": [string],
  "matchingSkills": [string]
}`

const rewriteSystemPrompt = `You are an expert resume writer. Rewrite the given resume so it is optimized for the provided job description, applying the recommended changes. Keep all factual content truthful: never invent employers, dates, or credentials. Preserve the candidate's real experience while improving wording, keyword coverage, and impact. Respond with the full improved resume as plain text only, no commentary.`

func buildAnalyzePrompt(resumeText string) []Message {
	return []Message{
		{Role: "system", Content: analyzeSystemPrompt},
		{Role: "user", Content: resumeText},
	}
}

func buildMatchPrompt(input llm.MatchInput) []Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Resume:\n%s\n\nJob Description:\n%s", input.ResumeText, input.JobDescription)
	if strings.TrimSpace(input.TargetRole) != "" {
		fmt.Fprintf(&b, "\n\nTarget Role: %s", input.TargetRole)
	}
	return []Message{
		{Role: "system", Content: matchSystemPrompt},
		{Role: "user", Content: b.String()},
	}
}

func buildRewritePrompt(input llm.RewriteInput) []Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Original Resume:\n%s\n\nJob Description:\n%s", input.ResumeText, input.JobDescription)
	if strings.TrimSpace(input.TargetRole) != "" {
		fmt.Fprintf(&b, "\n\nTarget Role: %s", input.TargetRole)
	}
	if len(input.RecommendedChanges) > 0 {
		fmt.Fprintf(&b, "\n\nRecommended Changes:\n%s", string(input.RecommendedChanges))
	}
	return []Message{
		{Role: "system", Content: rewriteSystemPrompt},
		{Role: "user", Content: b.String()},
	}
}
