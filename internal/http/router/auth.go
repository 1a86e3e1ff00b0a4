package router

import (
	"github.com/gin-gonic/gin"

	"launchloom.app/studio/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/refresh", h.Refresh)
}

func HealthRouter(rg *gin.RouterGroup, h *handler.HealthHandler) {
	rg.GET("", h.Check)
}
