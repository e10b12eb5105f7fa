package jobapplications

import (
	"context"
	"encoding/json"
	"testing"
)

func TestNormalizeMatchEmptyObjectFillsDefaults(t *testing.T) {
	result, err := NormalizeMatch(json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MatchScore != 0 {
		t.Fatalf("expected matchScore 0, got %v", result.MatchScore)
	}
	changes := result.RecommendedChanges
	if changes.KeywordOptimization == nil || changes.ExperienceAlignment == nil ||
		changes.SkillsHighlight == nil || changes.FormatSuggestions == nil {
		t.Fatalf("expected non-nil recommendation arrays, got %#v", changes)
	}
	if result.MissingSkills == nil || result.MatchingSkills == nil {
		t.Fatalf("expected non-nil skill arrays, got %#v", result)
	}
}

func TestNormalizeMatchPreservesValues(t *testing.T) {
	raw := json.RawMessage(`{
  "matchScore": 72,
  "recommendedChanges": {
    "keywordOptimization": ["add Kubernetes"],
    "experienceAlignment": [],
    "skillsHighlight": ["Go"],
    "formatSuggestions": []
  },
  "missingSkills": ["Terraform"],
  "matchingSkills": ["Go", "Kubernetes"]
}`)
	result, err := NormalizeMatch(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MatchScore != 72 {
		t.Fatalf("expected matchScore 72, got %v", result.MatchScore)
	}
	if len(result.RecommendedChanges.KeywordOptimization) != 1 {
		t.Fatalf("unexpected keywordOptimization: %#v", result.RecommendedChanges)
	}
	if len(result.RecommendedChanges.ExperienceAlignment) != 0 {
		t.Fatalf("expected empty experienceAlignment kept empty, got %#v", result.RecommendedChanges)
	}
	if len(result.MatchingSkills) != 2 {
		t.Fatalf("unexpected matchingSkills: %#v", result.MatchingSkills)
	}
}

func TestNormalizeMatchRejectsNonJSON(t *testing.T) {
	if _, err := NormalizeMatch(json.RawMessage("oops")); err == nil {
		t.Fatal("expected error for non-JSON payload")
	}
}

func TestMemoryRepoUpdateMergesPartialFields(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	app := JobApplication{
		ID:             "app-1",
		ResumeID:       "resume-1",
		JobDescription: "Backend role",
		MatchScore:     "72",
		RecommendedChanges: &RecommendedChanges{
			KeywordOptimization: []string{"add Kubernetes"},
			ExperienceAlignment: []string{},
			SkillsHighlight:     []string{},
			FormatSuggestions:   []string{},
		},
	}
	if err := repo.Create(ctx, app); err != nil {
		t.Fatalf("create: %v", err)
	}

	improved := "improved resume text"
	updated, err := repo.Update(ctx, "app-1", Update{ImprovedResumeContent: &improved})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ImprovedResumeContent != improved {
		t.Fatalf("expected improved content set, got %q", updated.ImprovedResumeContent)
	}
	if updated.MatchScore != "72" {
		t.Fatalf("expected matchScore untouched, got %q", updated.MatchScore)
	}
	if updated.RecommendedChanges == nil || len(updated.RecommendedChanges.KeywordOptimization) != 1 {
		t.Fatalf("expected recommendedChanges untouched, got %#v", updated.RecommendedChanges)
	}
	if updated.ID != "app-1" || updated.CreatedAt != app.CreatedAt {
		t.Fatalf("expected id and createdAt preserved")
	}
}

func TestMemoryRepoUpdateMissingIsNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	improved := "text"
	if _, err := repo.Update(context.Background(), "missing", Update{ImprovedResumeContent: &improved}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoRejectsSecondApplicationPerResume(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	if err := repo.Create(ctx, JobApplication{ID: "app-1", ResumeID: "resume-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, JobApplication{ID: "app-2", ResumeID: "resume-1"}); err != ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
