package v1

import (
	"net/http"

	"go-pulse-backend/config"
	"go-pulse-backend/internal/delivery/http/middleware"
	"go-pulse-backend/internal/delivery/http/response"
	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	DashboardUC  domain.DashboardUsecase
	PlannerUC    domain.PlannerUsecase
	RoadmapUC    domain.RoadmapUsecase
	AdminUC      domain.AdminUsecase
	ProfileUC    domain.ProfileUsecase
	QuizUC       domain.QuizUsecase
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	v1 := r.Group("/v1")

	// The gate itself skips the public paths (health, auth entry points, swagger).
	v1.Use(middleware.AccessGate(deps.JWKSProvider, deps.Config))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config))
	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(deps.Config))

	NewAuthHandler(v1, deps.Config, loginLimiter)
	NewDashboardHandler(v1, deps.DashboardUC)
	NewPlannerHandler(v1, deps.PlannerUC, uploadLimiter)
	NewRoadmapHandler(v1, deps.RoadmapUC)
	NewProfileHandler(v1, deps.ProfileUC)
	NewQuizHandler(v1, deps.QuizUC)

	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAdmin(deps.Config))
	{
		NewAdminHandler(admin, deps.AdminUC)
	}

	return r
}
