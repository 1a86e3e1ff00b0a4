package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"launchloom.app/studio/internal/http/dto"
	"launchloom.app/studio/internal/http/middleware"
	"launchloom.app/studio/internal/service"
)

type RunHandler struct {
	runService service.RunService
}

func NewRunHandler(runService service.RunService) *RunHandler {
	return &RunHandler{runService: runService}
}

func (h *RunHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	run, err := h.runService.Create(ctx, c.Param("workspace_id"), req.ToInput(middleware.GetUserID(ctx)))
	if err != nil {
		respondError(c, err, "failed to create run")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRunResponse(*run))
}

func (h *RunHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	limit, offset, ok := page(c, runPage)
	if !ok {
		return
	}

	runs, total, err := h.runService.List(ctx, c.Param("workspace_id"), limit, offset)
	if err != nil {
		respondError(c, err, "failed to list runs")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(runs, total, dto.ToRunResponse))
}

func (h *RunHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	run, err := h.runService.Get(ctx, c.Param("workspace_id"), c.Param("run_id"))
	if err != nil {
		respondError(c, err, "failed to get run")
		return
	}

	c.JSON(http.StatusOK, dto.ToRunResponse(*run))
}

func (h *RunHandler) RecordStageMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StageMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	run, err := h.runService.RecordStageMetrics(ctx, c.Param("workspace_id"), c.Param("run_id"), req.StageMetrics)
	if err != nil {
		respondError(c, err, "failed to record stage metrics")
		return
	}

	c.JSON(http.StatusOK, dto.ToRunResponse(*run))
}

func (h *RunHandler) SetEvaluation(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	run, err := h.runService.SetEvaluation(ctx, c.Param("workspace_id"), c.Param("run_id"), req.EvaluationScore, req.EvaluationReport)
	if err != nil {
		respondError(c, err, "failed to set evaluation")
		return
	}

	c.JSON(http.StatusOK, dto.ToRunResponse(*run))
}

func (h *RunHandler) SetCompliance(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ComplianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	run, err := h.runService.SetCompliance(ctx, c.Param("workspace_id"), c.Param("run_id"), req.ComplianceStatus, req.ComplianceReport)
	if err != nil {
		respondError(c, err, "failed to set compliance")
		return
	}

	c.JSON(http.StatusOK, dto.ToRunResponse(*run))
}
