package jobapplications

import (
	"encoding/json"
	"errors"
	"fmt"
)

// NormalizeMatch turns a possibly-partial job-match evaluator payload into a
// fully populated MatchResult, with the same defaulting policy as the resume
// analysis normalizer.
func NormalizeMatch(raw json.RawMessage) (MatchResult, error) {
	if len(raw) == 0 {
		return MatchResult{}, errors.New("empty evaluator response")
	}
	var result MatchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return MatchResult{}, fmt.Errorf("evaluator response parse: %w", err)
	}
	fillChangesDefaults(&result.RecommendedChanges)
	if result.MissingSkills == nil {
		result.MissingSkills = []string{}
	}
	if result.MatchingSkills == nil {
		result.MatchingSkills = []string{}
	}
	return result, nil
}

func fillChangesDefaults(changes *RecommendedChanges) {
	if changes.KeywordOptimization == nil {
		changes.KeywordOptimization = []string{}
	}
	if changes.ExperienceAlignment == nil {
		changes.ExperienceAlignment = []string{}
	}
	if changes.SkillsHighlight == nil {
		changes.SkillsHighlight = []string{}
	}
	if changes.FormatSuggestions == nil {
		changes.FormatSuggestions = []string{}
	}
}
