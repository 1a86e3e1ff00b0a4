package router

import (
	"github.com/gin-gonic/gin"

	"launchloom.app/studio/internal/http/handler"
)

func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:workspace_id", h.Get)
	rg.PATCH("/:workspace_id", h.Update)
}

func MemberRouter(rg *gin.RouterGroup, h *handler.MemberHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Add)
	rg.POST("/:member_id/:action", h.Transition)
}

func InviteRouter(rg *gin.RouterGroup, h *handler.MemberHandler) {
	rg.POST("/accept", h.AcceptInvite)
}

func RunRouter(rg *gin.RouterGroup, h *handler.RunHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:run_id", h.Get)
	rg.PUT("/:run_id/stage-metrics", h.RecordStageMetrics)
	rg.PUT("/:run_id/evaluation", h.SetEvaluation)
	rg.PUT("/:run_id/compliance", h.SetCompliance)
}
