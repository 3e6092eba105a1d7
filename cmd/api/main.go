package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-pulse-backend/config"
	_ "go-pulse-backend/docs" // Important for Swagger
	v1 "go-pulse-backend/internal/delivery/http/v1"
	"go-pulse-backend/internal/repository/postgres"
	"go-pulse-backend/internal/usecase"
	"go-pulse-backend/pkg/auth"
	"go-pulse-backend/pkg/database"
	"go-pulse-backend/pkg/genai"
	"go-pulse-backend/pkg/logger"
	"go-pulse-backend/pkg/redis"
	"go-pulse-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           Pulse Backend API
// @version         1.0
// @description     Internship progress tracker backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting pulse backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}

	// 5. Setup Repositories
	goalRepo := postgres.NewGoalRepository(dbPool)
	journalRepo := postgres.NewJournalRepository(dbPool)
	attachmentRepo := postgres.NewAttachmentRepository(dbPool)
	weekRepo := postgres.NewWeekRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)

	// 6. Setup External Services
	objectStore := storage.NewClient(cfg.SupabaseUrl, cfg.SupabaseServiceKey, cfg.AttachmentsBucket)
	questionGen := genai.New(cfg.OpenAIAPIKey, cfg.QuizModel)
	if !questionGen.Configured() {
		logger.Log.Warn("OpenAI key not configured - quiz generation will be unavailable")
	}

	// 7. Setup UseCases
	validate := validator.New()
	dashboardUC := usecase.NewDashboardUsecase(goalRepo, profileRepo)
	plannerUC := usecase.NewPlannerUsecase(goalRepo, journalRepo, attachmentRepo, objectStore)
	roadmapUC := usecase.NewRoadmapUsecase(weekRepo, goalRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo, cfg.AdminEmailSet())
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	quizUC := usecase.NewQuizUsecase(goalRepo, questionGen, validate)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		DashboardUC:  dashboardUC,
		PlannerUC:    plannerUC,
		RoadmapUC:    roadmapUC,
		AdminUC:      adminUC,
		ProfileUC:    profileUC,
		QuizUC:       quizUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
