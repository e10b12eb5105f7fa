package jobapplications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateNullsOptionalColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	app := JobApplication{
		ID:             "app-1",
		ResumeID:       "resume-1",
		JobDescription: "Senior Backend Engineer",
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO job_applications").
		WithArgs(
			app.ID,
			app.ResumeID,
			sqlmock.AnyArg(), // analysis_id NULL
			app.JobDescription,
			sqlmock.AnyArg(), // target_role NULL
			sqlmock.AnyArg(), // match_score NULL
			sqlmock.AnyArg(), // recommended_changes NULL
			sqlmock.AnyArg(), // improved_resume_content NULL
			app.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), app); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateDuplicateResume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("INSERT INTO job_applications").
		WillReturnError(errors.New(`duplicate key value violates unique constraint "job_applications_resume_id_key"`))

	err = repo.Create(context.Background(), JobApplication{ID: "app-1", ResumeID: "resume-1"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestPGRepoGetByResumeIDDecodesChanges(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC()
	changes, _ := json.Marshal(RecommendedChanges{
		KeywordOptimization: []string{"Mention Kubernetes"},
		ExperienceAlignment: []string{},
		SkillsHighlight:     []string{},
		FormatSuggestions:   []string{},
	})

	rows := sqlmock.NewRows([]string{
		"id", "resume_id", "analysis_id", "job_description", "target_role",
		"match_score", "recommended_changes", "improved_resume_content", "created_at",
	}).AddRow("app-1", "resume-1", "analysis-1", "jd", nil, "74", changes, nil, createdAt)
	mock.ExpectQuery("SELECT id, resume_id, analysis_id").
		WithArgs("resume-1").
		WillReturnRows(rows)

	got, err := repo.GetByResumeID(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("GetByResumeID: %v", err)
	}
	if got.AnalysisID != "analysis-1" || got.MatchScore != "74" {
		t.Fatalf("unexpected job application %+v", got)
	}
	if got.TargetRole != "" || got.ImprovedResumeContent != "" {
		t.Fatalf("expected NULL columns mapped to empty strings, got %+v", got)
	}
	if got.RecommendedChanges == nil || len(got.RecommendedChanges.KeywordOptimization) != 1 {
		t.Fatalf("expected recommended changes decoded, got %+v", got.RecommendedChanges)
	}
}

func TestPGRepoUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	improved := "new content"
	mock.ExpectExec("UPDATE job_applications").
		WithArgs("missing", improved, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = repo.Update(context.Background(), "missing", Update{ImprovedResumeContent: &improved})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateRefetchesRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	improved := "new content"
	createdAt := time.Now().UTC()

	mock.ExpectExec("UPDATE job_applications").
		WithArgs("app-1", improved, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	rows := sqlmock.NewRows([]string{
		"id", "resume_id", "analysis_id", "job_description", "target_role",
		"match_score", "recommended_changes", "improved_resume_content", "created_at",
	}).AddRow("app-1", "resume-1", nil, "jd", nil, nil, nil, improved, createdAt)
	mock.ExpectQuery("SELECT id, resume_id, analysis_id").
		WithArgs("app-1").
		WillReturnRows(rows)

	got, err := repo.Update(context.Background(), "app-1", Update{ImprovedResumeContent: &improved})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.ImprovedResumeContent != improved {
		t.Fatalf("expected improved content, got %q", got.ImprovedResumeContent)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
