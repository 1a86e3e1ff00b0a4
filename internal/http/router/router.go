package router

import (
	"github.com/gin-gonic/gin"

	"launchloom.app/studio/common/cache"
	"launchloom.app/studio/internal/http/handler"
	"launchloom.app/studio/internal/http/middleware"
	"launchloom.app/studio/internal/service"
)

type RouterConfig struct {
	APIPrefix string
	// RateLimitPerMinute of zero disables rate limiting.
	RateLimitPerMinute int
	Cache              *cache.Cache
	DB                 handler.Pinger
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/healthz", handler.Liveness)

	authService := services.Auth()

	api := router.Group(cfg.APIPrefix)
	if cfg.RateLimitPerMinute > 0 {
		api.Use(middleware.RateLimit(cfg.Cache, cfg.RateLimitPerMinute))
	}
	api.Use(middleware.OptionalAuth(authService))
	{
		HealthRouter(api.Group("/health"), handler.NewHealthHandler(cfg.DB, cfg.Cache))

		AuthRouter(api.Group("/auth"), handler.NewAuthHandler(authService))

		workspaces := api.Group("/workspaces")
		WorkspaceRouter(workspaces, handler.NewWorkspaceHandler(services.Workspaces()))

		memberHandler := handler.NewMemberHandler(services.Members())
		MemberRouter(workspaces.Group("/:workspace_id/members"), memberHandler)
		InviteRouter(api.Group("/invites", middleware.RequireAuth(authService)), memberHandler)

		RunRouter(workspaces.Group("/:workspace_id/runs"), handler.NewRunHandler(services.Runs()))
	}
}
