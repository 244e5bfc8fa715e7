package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yukikurage/freelance-marketplace-api/internal/config"
	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
	"github.com/yukikurage/freelance-marketplace-api/internal/database"
	"github.com/yukikurage/freelance-marketplace-api/internal/handlers"
	"github.com/yukikurage/freelance-marketplace-api/internal/logger"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/payment"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	if cfg.SessionStore != "redis" {
		return cookie.NewStore([]byte(cfg.SessionSecret)), nil
	}

	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	return redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret),
	)
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)
	zl := logger.New(cfg.GinMode)
	defer zl.Sync() //nolint:errcheck

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		zl.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		zl.Fatal("Failed to run migrations", zap.Error(err))
	}
	if cfg.SeedCatalog {
		if err := database.Seed(database.GetDB(), cfg.DemoPassword); err != nil {
			zl.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestLogger())

	store, err := newSessionStore(cfg)
	if err != nil {
		zl.Fatal("Failed to create session store", zap.String("backend", cfg.SessionStore), zap.Error(err))
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == gin.ReleaseMode
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Payments stay off until a key is configured
	var processor payment.Processor = payment.Disabled{}
	if cfg.StripeSecretKey != "" {
		processor = payment.NewStripeProcessor(cfg.StripeSecretKey)
	} else {
		zl.Warn("STRIPE_SECRET_KEY not set, milestone payments are disabled")
	}

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	authService := services.NewAuthService(userRepo)
	jobService := services.NewJobService(jobRepo, userRepo, cfg.PostJobLatency)
	projectService := services.NewProjectService(projectRepo, proposalRepo, jobRepo, userRepo, processor, cfg.PaymentReturnURL)

	r.Use(middleware.SessionStore(authService, cfg.AuthLatency))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Freelance Marketplace API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRoutes(r, handlers.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Jobs:      handlers.NewJobHandler(jobService),
		People:    handlers.NewPeopleHandler(services.NewPeopleService(userRepo, jobRepo)),
		Proposals: handlers.NewProposalHandler(services.NewProposalService(proposalRepo, jobRepo, userRepo, cfg.SubmitLatency)),
		Messages:  handlers.NewMessageHandler(services.NewMessageService(messageRepo, userRepo)),
		Projects:  handlers.NewProjectHandler(projectService),
		Dashboard: handlers.NewDashboardHandler(services.NewDashboardService(userRepo, jobRepo, proposalRepo, messageRepo, projectService, jobService)),
		Settings:  handlers.NewSettingsHandler(services.NewSettingsService(userRepo)),
	}, projectRepo)

	// Start server
	addr := ":" + cfg.Port
	zl.Info("Server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zl.Fatal("Failed to start server", zap.Error(err))
	}
}
