package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/seojin-dev/as-human-being/backend/internal/cache"
	"github.com/seojin-dev/as-human-being/backend/internal/handlers"
	"github.com/seojin-dev/as-human-being/backend/internal/middleware"
	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"github.com/seojin-dev/as-human-being/backend/internal/monitoring"
	"github.com/seojin-dev/as-human-being/backend/internal/realtime"
	"github.com/seojin-dev/as-human-being/backend/internal/repositories"
	"github.com/seojin-dev/as-human-being/backend/internal/services"
	"github.com/seojin-dev/as-human-being/backend/pkg/anthropic"
	"github.com/seojin-dev/as-human-being/backend/pkg/config"
	"go.uber.org/zap"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(monitoring.Middleware())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *config.DB, cfg *config.Config, logger *zap.Logger) {
	// AutoMigrate PostgreSQL models
	err := db.Postgres.AutoMigrate(
		&models.Profile{},
		&models.Inspiration{},
		&models.Resonate{},
		&models.Bookmark{},
		&models.Comment{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize Repositories ---
	profileRepo := repositories.NewPostgresProfileRepository(db.Postgres)
	inspirationRepo := repositories.NewPostgresInspirationRepository(db.Postgres)
	resonateRepo := repositories.NewPostgresResonateRepository(db.Postgres)
	bookmarkRepo := repositories.NewPostgresBookmarkRepository(db.Postgres)
	commentRepo := repositories.NewPostgresCommentRepository(db.Postgres)
	notificationRepo := repositories.NewPostgresNotificationRepository(db.Postgres)

	// --- Realtime notification stream ---
	hub := realtime.NewHub(logger)
	go hub.Run()
	notifier := realtime.NewHubNotifier(hub)
	e.GET("/ws", realtime.ServeWS(hub, cfg.JWTSecret))

	// --- Initialize Services ---
	recommendationCache := cache.NewRecommendationsCache(db.Redis, cfg.RecommendTTL, logger)
	llmClient := anthropic.NewClient(cfg.AnthropicAPIKey)
	if llmClient == nil {
		log.Println("No Anthropic API key configured; AI endpoints use local fallbacks.")
	}

	recommendationService := services.NewRecommendationService(
		inspirationRepo, resonateRepo, bookmarkRepo, profileRepo, recommendationCache, logger)
	interactionService := services.NewInteractionService(
		inspirationRepo, resonateRepo, bookmarkRepo, commentRepo, notificationRepo,
		notifier, recommendationCache, logger)
	tagService := services.NewTagService(llmClient, logger)
	summaryService := services.NewSummaryService(llmClient, logger)

	// --- Unprotected routes ---
	public := e.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(profileRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(public.Group("/auth"))

	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	recommendationHandler.RegisterRecommendationRoutes(public)

	aiHandler := handlers.NewAIHandler(tagService, summaryService)
	aiHandler.RegisterAIRoutes(public)

	inspirationHandler := handlers.NewInspirationHandler(
		inspirationRepo, profileRepo, resonateRepo, bookmarkRepo, commentRepo)
	inspirationHandler.RegisterPublicRoutes(public)

	commentHandler := handlers.NewCommentHandler(interactionService, commentRepo, profileRepo)
	commentHandler.RegisterPublicRoutes(public)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	profileHandler := handlers.NewProfileHandler(profileRepo)
	profileHandler.RegisterProfileRoutes(api)

	inspirationHandler.RegisterProtectedRoutes(api)
	commentHandler.RegisterProtectedRoutes(api)

	interactionHandler := handlers.NewInteractionHandler(interactionService, bookmarkRepo)
	interactionHandler.RegisterInteractionRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo, profileRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Println("All routes configured.")
}
