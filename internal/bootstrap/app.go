package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"resumelens-backend/internal/analyses"
	"resumelens-backend/internal/jobapplications"
	"resumelens-backend/internal/llm"
	"resumelens-backend/internal/llm/openai"
	"resumelens-backend/internal/portfolios"
	"resumelens-backend/internal/resumes"
	"resumelens-backend/internal/shared/config"
	"resumelens-backend/internal/shared/server"
	"resumelens-backend/internal/shared/storage/db"
)

// App bundles the wired application for the server entrypoint.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
}

// Build wires repositories, the LLM client, services, and the router.
// Without DATABASE_URL (or when connecting fails) it falls back to
// in-memory repositories so local development works with no database.
func Build(ctx context.Context, cfg config.Config) *App {
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		conn, err := db.Connect(ctx, cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(ctx, conn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				conn.Close()
				conn = nil
			}
		}
		sqlDB = conn
	}

	var (
		resumeRepo    resumes.Repo
		analysisRepo  analyses.Repo
		jobAppRepo    jobapplications.Repo
		portfolioRepo portfolios.Repo
	)
	if sqlDB != nil {
		resumeRepo = &resumes.PGRepo{DB: sqlDB}
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
		jobAppRepo = &jobapplications.PGRepo{DB: sqlDB}
		portfolioRepo = &portfolios.PGRepo{DB: sqlDB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
		jobAppRepo = jobapplications.NewMemoryRepo()
		portfolioRepo = portfolios.NewMemoryRepo()
	}

	resumeSvc := &resumes.Service{
		Repo:     resumeRepo,
		Analyses: analysisRepo,
		JobApps:  jobAppRepo,
		LLM:      newLLMClient(cfg),
	}

	router := server.NewRouter(
		cfg,
		resumes.NewHandler(resumeSvc, cfg.MaxUploadBytes),
		analyses.NewHandler(analysisRepo),
		jobapplications.NewHandler(jobAppRepo),
		portfolios.NewHandler(portfolioRepo, resumeRepo),
	)

	return &App{Config: cfg, Router: router, DB: sqlDB}
}

func newLLMClient(cfg config.Config) llm.Client {
	if cfg.LLMProvider != "openai" {
		log.Printf("unknown LLM provider %q, evaluator endpoints will fail", cfg.LLMProvider)
		return llm.PlaceholderClient{}
	}
	client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
	if err != nil {
		log.Printf("OpenAI client not configured, evaluator endpoints will fail: %v", err)
		return llm.PlaceholderClient{}
	}
	return client
}
