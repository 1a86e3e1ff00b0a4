package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"launchloom.app/studio/common/cache"
	"launchloom.app/studio/common/id"
	"launchloom.app/studio/common/logger"
	"launchloom.app/studio/common/otel"
	"launchloom.app/studio/common/security"
	"launchloom.app/studio/core/config"
	"launchloom.app/studio/core/db"
	"launchloom.app/studio/internal/http/dto"
	"launchloom.app/studio/internal/http/middleware"
	httprouter "launchloom.app/studio/internal/http/router"
	"launchloom.app/studio/internal/queue"
	"launchloom.app/studio/internal/service"
	"launchloom.app/studio/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "studio api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	if err := dto.RegisterValidators(); err != nil {
		slog.ErrorContext(ctx, "failed to register validators", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	// The API runs without Redis: the cache is best-effort and rate limiting fails open.
	redisCache, err := cache.New(ctx, cfg.Redis.URL, cfg.Redis.CacheTTL)
	if err != nil {
		slog.WarnContext(ctx, "redis unavailable, continuing without cache", "error", err)
		redisCache = nil
	} else {
		defer redisCache.Close()
		slog.InfoContext(ctx, "redis connected")
	}

	var events queue.Producer
	if cfg.Events.Enabled && redisCache != nil {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}
		events = queue.NewRedisProducer(redis.NewClient(redisOpts), cfg.Events.Stream, cfg.Events.MaxLen, nil)
		defer events.Close()
		slog.InfoContext(ctx, "run events enabled", "stream", cfg.Events.Stream)
	}

	stores := store.NewStores(database.Queries())
	services := service.NewServices(stores, service.NewTxRunner(database), security.NewTokenIssuer(cfg.Security), events)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, database, redisCache)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port, "prefix", cfg.APIPrefix)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, database *db.DB, redisCache *cache.Cache) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	if cfg.CORS.Enabled() {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     cfg.CORS.AllowedMethods,
			AllowHeaders:     cfg.CORS.AllowedHeaders,
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		APIPrefix:          cfg.APIPrefix,
		RateLimitPerMinute: cfg.RateLimit.PerMinute,
		Cache:              redisCache,
		DB:                 database,
	})

	return router
}

const banner = `
██╗      █████╗ ██╗   ██╗███╗   ██╗ ██████╗██╗  ██╗██╗      ██████╗  ██████╗ ███╗   ███╗
██║     ██╔══██╗██║   ██║████╗  ██║██╔════╝██║  ██║██║     ██╔═══██╗██╔═══██╗████╗ ████║
██║     ███████║██║   ██║██╔██╗ ██║██║     ███████║██║     ██║   ██║██║   ██║██╔████╔██║
██║     ██╔══██║██║   ██║██║╚██╗██║██║     ██╔══██║██║     ██║   ██║██║   ██║██║╚██╔╝██║
███████╗██║  ██║╚██████╔╝██║ ╚████║╚██████╗██║  ██║███████╗╚██████╔╝╚██████╔╝██║ ╚═╝ ██║
╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝ ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝  ╚═════╝ ╚═╝     ╚═╝
`
