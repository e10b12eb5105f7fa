package analyses

import (
	"encoding/json"
	"testing"
)

func TestNormalizeEmptyObjectFillsDefaults(t *testing.T) {
	result, err := NormalizeResult(json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallScore != 0 {
		t.Fatalf("expected overallScore 0, got %v", result.OverallScore)
	}
	if result.Scores != (Scores{}) {
		t.Fatalf("expected zero scores, got %+v", result.Scores)
	}
	if result.Feedback == nil || len(result.Feedback) != 0 {
		t.Fatalf("expected empty feedback slice, got %#v", result.Feedback)
	}
	if result.Skills.Present == nil || result.Skills.Missing == nil {
		t.Fatalf("expected non-nil skills arrays, got %#v", result.Skills)
	}
	if result.ExtractedData.Experience == nil || result.ExtractedData.Education == nil || result.ExtractedData.Projects == nil {
		t.Fatalf("expected non-nil extractedData arrays, got %#v", result.ExtractedData)
	}
}

func TestNormalizeNeverSerializesNullArrays(t *testing.T) {
	result, err := NormalizeResult(json.RawMessage(`{"overallScore": 70, "feedback": [{"section": "Experience", "score": 60}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	feedback, ok := decoded["feedback"].([]any)
	if !ok || len(feedback) != 1 {
		t.Fatalf("expected one feedback section, got %#v", decoded["feedback"])
	}
	section := feedback[0].(map[string]any)
	if _, ok := section["points"].([]any); !ok {
		t.Fatalf("expected points to serialize as array, got %#v", section["points"])
	}
	if _, ok := section["suggestions"].([]any); !ok {
		t.Fatalf("expected suggestions to serialize as array, got %#v", section["suggestions"])
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	first, err := NormalizeResult(json.RawMessage(`{"overallScore": 85, "skills": {"present": ["Go"]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := NormalizeResult(payload)
	if err != nil {
		t.Fatalf("unexpected error on renormalize: %v", err)
	}
	if second.OverallScore != 85 || len(second.Skills.Present) != 1 {
		t.Fatalf("expected values preserved, got %+v", second)
	}
}

func TestNormalizePreservesFullPayload(t *testing.T) {
	raw := json.RawMessage(`{
  "overallScore": 78,
  "scores": {"content": 80, "skills": 75, "impact": 70, "formatting": 85},
  "feedback": [{"section": "Summary", "score": 80, "points": [{"type": "success", "text": "Clear headline"}], "suggestions": ["Quantify impact"]}],
  "skills": {"present": ["Go", "Kubernetes"], "missing": ["Terraform"]},
  "extractedData": {"name": "Jane Doe", "title": "Engineer", "experience": [{"company": "Acme", "role": "Dev", "duration": "2020-2024", "description": "Built APIs"}], "education": []}
}`)
	result, err := NormalizeResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallScore != 78 {
		t.Fatalf("expected overallScore 78, got %v", result.OverallScore)
	}
	if result.Scores.Content != 80 || result.Scores.Formatting != 85 {
		t.Fatalf("unexpected scores: %+v", result.Scores)
	}
	if len(result.Feedback) != 1 || result.Feedback[0].Points[0].Type != "success" {
		t.Fatalf("unexpected feedback: %+v", result.Feedback)
	}
	if result.ExtractedData.Name != "Jane Doe" || len(result.ExtractedData.Experience) != 1 {
		t.Fatalf("unexpected extractedData: %+v", result.ExtractedData)
	}
	if result.ExtractedData.Projects == nil {
		t.Fatalf("expected projects defaulted to empty array")
	}
}

func TestNormalizeRejectsNonJSON(t *testing.T) {
	if _, err := NormalizeResult(json.RawMessage("not json")); err == nil {
		t.Fatal("expected error for non-JSON payload")
	}
	if _, err := NormalizeResult(nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
