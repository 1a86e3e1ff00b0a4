package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"launchloom.app/studio/internal/http/dto"
	"launchloom.app/studio/internal/http/middleware"
	"launchloom.app/studio/internal/service"
)

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	ws, err := h.workspaceService.Create(ctx, req.ToInput(middleware.GetUserID(ctx)))
	if err != nil {
		respondError(c, err, "failed to create workspace")
		return
	}

	slog.InfoContext(ctx, "workspace created via api", "public_id", ws.PublicID, "slug", ws.Slug)

	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(*ws))
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	limit, offset, ok := page(c, workspacePage)
	if !ok {
		return
	}

	items, total, err := h.workspaceService.List(ctx, limit, offset)
	if err != nil {
		respondError(c, err, "failed to list workspaces")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, total, dto.ToWorkspaceResponse))
}

// Get resolves :workspace_id as a public id or slug and embeds the newest
// run_limit runs.
func (h *WorkspaceHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	runLimit, ok := queryInt32(c, "run_limit", embeddedRuns)
	if !ok {
		return
	}

	ws, err := h.workspaceService.Get(ctx, c.Param("workspace_id"), service.WorkspaceLoad{
		Members:  true,
		RunLimit: runLimit,
	})
	if err != nil {
		respondError(c, err, "failed to get workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceWithRunsResponse(*ws))
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	ws, err := h.workspaceService.Update(ctx, c.Param("workspace_id"), req.ToInput())
	if err != nil {
		respondError(c, err, "failed to update workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(*ws))
}
