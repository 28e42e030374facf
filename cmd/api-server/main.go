package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Thiyagu2009/mindtales/database"
	"github.com/Thiyagu2009/mindtales/internal/api/handler"
	"github.com/Thiyagu2009/mindtales/internal/api/middleware"
	"github.com/Thiyagu2009/mindtales/internal/api/repository"
	"github.com/Thiyagu2009/mindtales/internal/api/service"
	"github.com/Thiyagu2009/mindtales/internal/cache"
	"github.com/Thiyagu2009/mindtales/internal/config"
	"github.com/Thiyagu2009/mindtales/internal/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	resultsCache, err := cache.NewResultsCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	if resultsCache == nil {
		logger.Info("Redis not configured, results caching disabled")
	}

	collector := metrics.NewCollector()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	menuService := service.NewMenuService(menuRepo)
	votingService := service.NewVotingService(voteRepo, menuRepo, resultsCache, collector)
	resultsService := service.NewResultsService(voteRepo, menuRepo, resultsCache, collector)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds()))
	menuHandler := handler.NewMenuHandler(menuService, collector)
	votingHandler := handler.NewVotingHandler(votingService, resultsService)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(collector.Handler()))

	api := r.Group("/api")
	api.Use(middleware.AppVersion())

	// Public routes: signup, login, refresh
	authHandler.RegisterRoutes(api)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))
	menuHandler.RegisterPublicRoutes(authed)

	// Restaurant-only routes
	restaurant := authed.Group("")
	restaurant.Use(middleware.RequireRestaurant(), rateLimiter.Middleware())
	menuHandler.RegisterRestaurantRoutes(restaurant)

	// Employee-only routes
	employee := authed.Group("")
	employee.Use(middleware.RequireEmployee(), rateLimiter.Middleware())
	votingHandler.RegisterRoutes(employee)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
