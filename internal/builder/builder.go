package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/api"
	applicationapi "github.com/careerforge/careerforge-api/internal/api/application"
	interviewapi "github.com/careerforge/careerforge-api/internal/api/interview"
	resumeapi "github.com/careerforge/careerforge-api/internal/api/resume"
	roadmapapi "github.com/careerforge/careerforge-api/internal/api/roadmap"
	"github.com/careerforge/careerforge-api/internal/config"
	"github.com/careerforge/careerforge-api/internal/integration/jobpost"
	"github.com/careerforge/careerforge-api/internal/integration/llm"
	"github.com/careerforge/careerforge-api/internal/pkg/validator"
	"github.com/careerforge/careerforge-api/internal/repository"
	applicationuc "github.com/careerforge/careerforge-api/internal/usecase/application"
	interviewuc "github.com/careerforge/careerforge-api/internal/usecase/interview"
	resumeuc "github.com/careerforge/careerforge-api/internal/usecase/resume"
	roadmapuc "github.com/careerforge/careerforge-api/internal/usecase/roadmap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	resumeRepo := repository.NewResumePostgres(db)
	sessionRepo := repository.NewInterviewSessionPostgres(db)
	appRepo := repository.NewApplicationPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var (
		resumeLLM      resumeuc.GenerationConnector
		interviewLLM   interviewuc.GenerationConnector
		roadmapLLM     roadmapuc.GenerationConnector
		applicationLLM applicationuc.GenerationConnector
		jobPosts       applicationuc.JobPostConnector
	)

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		mockLLM := llm.NewMockConnector()
		resumeLLM, interviewLLM, roadmapLLM, applicationLLM = mockLLM, mockLLM, mockLLM, mockLLM
		jobPosts = jobpost.NewMockConnector()
	} else {
		logger.Info("Using real connectors for external services")
		llmConnector := llm.NewConnector(cfg.LLMCfg)
		resumeLLM, interviewLLM, roadmapLLM, applicationLLM = llmConnector, llmConnector, llmConnector, llmConnector
		jobPosts = jobpost.NewConnector(cfg.JobPostCfg)
	}

	// Initialize validators
	requestValidator := validator.New()
	logger.Info("Validators initialized")

	// Initialize use cases
	resumeUC := resumeuc.NewUsecase(resumeRepo, requestValidator, resumeLLM)
	interviewUC := interviewuc.NewUsecase(sessionRepo, requestValidator, interviewLLM)
	roadmapUC := roadmapuc.NewUsecase(requestValidator, roadmapLLM)
	applicationUC := applicationuc.NewUsecase(appRepo, requestValidator, jobPosts, applicationLLM)
	logger.Info("Use cases initialized")

	// Setup API handlers
	handlers := api.Handlers{
		Resume:      resumeapi.NewHandler(resumeUC),
		Interview:   interviewapi.NewHandler(interviewUC),
		Roadmap:     roadmapapi.NewHandler(roadmapUC),
		Application: applicationapi.NewHandler(applicationUC),
	}
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(handlers, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. The write timeout has to outlast the router's
	// generation timeout, otherwise slow generations get cut off mid-response.
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 200 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
