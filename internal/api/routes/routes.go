package routes

import (
	"time"

	"github.com/jrmeyers92/client-portals/internal/api/handlers"
	"github.com/jrmeyers92/client-portals/internal/api/middleware"
	"github.com/jrmeyers92/client-portals/internal/auth"
	"github.com/jrmeyers92/client-portals/internal/config"
	"github.com/jrmeyers92/client-portals/internal/identity"
	"github.com/jrmeyers92/client-portals/internal/logger"
	"github.com/jrmeyers92/client-portals/internal/repository"
	"github.com/jrmeyers92/client-portals/internal/service"
	"github.com/jrmeyers92/client-portals/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the external collaborators built in main. Assets and Repairs may be nil.
type Dependencies struct {
	Assets    storage.AssetStore
	Directory identity.Directory
	Repairs   identity.RepairQueue
	Checks    map[string]handlers.Pinger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()
	onboardingValidator := service.NewOnboardingValidator(validate, cfg.MaxLogoBytes)

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)

	// Initialize services
	onboardingService := service.NewOnboardingService(
		organizationRepo,
		deps.Assets,
		deps.Directory,
		deps.Repairs,
		onboardingValidator,
		service.OnboardingOptionsFromConfig(cfg),
	)
	roleService := service.NewRoleService(deps.Directory)
	organizationService := service.NewOrganizationService(organizationRepo, onboardingValidator)

	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		logger.New().WithError(err).Warn("auth config not loaded, falling back to JWT_SECRET")
		authConfig = &auth.AuthConfig{JWTSecret: cfg.JWTSecret, Issuer: "client-portals", TokenTTL: time.Hour}
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		logger.New().WithError(err).Fatal("failed to initialize auth service")
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	exposeDetails := !cfg.IsProduction()
	healthHandler := handlers.NewHealthHandler(db, deps.Checks)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService, cfg.MaxLogoBytes, exposeDetails)
	roleHandler := handlers.NewRoleHandler(roleService, exposeDetails)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, exposeDetails)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/api/auth/validate", authHandler.ValidateToken)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.POST("/onboarding", onboardingHandler.CompleteOnboarding)
		v1.POST("/role", roleHandler.SetRole)

		organizations := v1.Group("/organizations")
		{
			organizations.GET("/me", organizationHandler.GetMyOrganization)
			organizations.GET("/slug-availability", organizationHandler.CheckSlugAvailability)
			organizations.GET("/:id", organizationHandler.GetOrganization)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success":    false,
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, checks map[string]handlers.Pinger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, checks)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
