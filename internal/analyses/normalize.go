package analyses

import (
	"encoding/json"
	"errors"
	"fmt"
)

// NormalizeResult turns a possibly-partial evaluator payload into a fully
// populated Result. Missing numeric scores become 0, missing arrays become
// empty, missing nested objects take their empty-field form. Absent fields
// never propagate past this function.
func NormalizeResult(raw json.RawMessage) (Result, error) {
	if len(raw) == 0 {
		return Result{}, errors.New("empty evaluator response")
	}
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, fmt.Errorf("evaluator response parse: %w", err)
	}
	fillResultDefaults(&result)
	return result, nil
}

func fillResultDefaults(result *Result) {
	if result.Feedback == nil {
		result.Feedback = []FeedbackSection{}
	}
	for i := range result.Feedback {
		if result.Feedback[i].Points == nil {
			result.Feedback[i].Points = []FeedbackPoint{}
		}
		if result.Feedback[i].Suggestions == nil {
			result.Feedback[i].Suggestions = []string{}
		}
	}
	if result.Skills.Present == nil {
		result.Skills.Present = []string{}
	}
	if result.Skills.Missing == nil {
		result.Skills.Missing = []string{}
	}
	fillExtractedDefaults(&result.ExtractedData)
}

func fillExtractedDefaults(data *ExtractedData) {
	if data.Experience == nil {
		data.Experience = []ExperienceItem{}
	}
	if data.Education == nil {
		data.Education = []EducationItem{}
	}
	if data.Projects == nil {
		data.Projects = []ProjectItem{}
	}
}
