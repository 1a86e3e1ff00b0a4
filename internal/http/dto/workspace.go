package dto

import (
	"time"

	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/service"
)

type MemberRequest struct {
	Email string              `json:"email" binding:"required,email,max=320"`
	Role  model.WorkspaceRole `json:"role,omitempty" binding:"omitempty,workspace_role"`
}

type CreateWorkspaceRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=255"`
	Slug        *string         `json:"slug,omitempty" binding:"omitempty,max=255,slug"`
	Description *string         `json:"description,omitempty"`
	Settings    map[string]any  `json:"settings,omitempty"`
	IsActive    *bool           `json:"is_active,omitempty"`
	CreatedByID *int64          `json:"created_by_id,omitempty,string"`
	Members     []MemberRequest `json:"members,omitempty" binding:"omitempty,dive"`
}

// ToInput converts the request, defaulting the creator to fallbackCreator
// when the body does not name one.
func (r CreateWorkspaceRequest) ToInput(fallbackCreator *int64) service.CreateWorkspaceInput {
	createdBy := r.CreatedByID
	if createdBy == nil {
		createdBy = fallbackCreator
	}
	members := make([]service.MemberInput, len(r.Members))
	for i, m := range r.Members {
		members[i] = service.MemberInput{Email: m.Email, Role: m.Role}
	}
	return service.CreateWorkspaceInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Settings:    r.Settings,
		IsActive:    r.IsActive,
		CreatedByID: createdBy,
		Members:     members,
	}
}

type UpdateWorkspaceRequest struct {
	Name        *string        `json:"name,omitempty" binding:"omitnil,min=1,max=255"`
	Slug        *string        `json:"slug,omitempty" binding:"omitnil,min=1,max=255,slug"`
	Description *string        `json:"description,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
}

func (r UpdateWorkspaceRequest) ToInput() service.UpdateWorkspaceInput {
	return service.UpdateWorkspaceInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Settings:    r.Settings,
		IsActive:    r.IsActive,
	}
}

type WorkspaceResponse struct {
	ID          int64            `json:"id,string"`
	PublicID    string           `json:"public_id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description *string          `json:"description"`
	Settings    map[string]any   `json:"settings"`
	IsActive    bool             `json:"is_active"`
	CreatedByID *int64           `json:"created_by_id,omitempty,string"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Members     []MemberResponse `json:"members"`
}

// WorkspaceWithRunsResponse embeds the newest runs of the workspace.
type WorkspaceWithRunsResponse struct {
	WorkspaceResponse
	Runs []RunResponse `json:"runs"`
}

func ToWorkspaceResponse(ws model.Workspace) WorkspaceResponse {
	settings := ws.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	members := make([]MemberResponse, len(ws.Members))
	for i, m := range ws.Members {
		members[i] = ToMemberResponse(m)
	}
	return WorkspaceResponse{
		ID:          ws.ID,
		PublicID:    ws.PublicID,
		Name:        ws.Name,
		Slug:        ws.Slug,
		Description: ws.Description,
		Settings:    settings,
		IsActive:    ws.IsActive,
		CreatedByID: ws.CreatedByID,
		CreatedAt:   ws.CreatedAt,
		UpdatedAt:   ws.UpdatedAt,
		Members:     members,
	}
}

func ToWorkspaceWithRunsResponse(ws model.Workspace) WorkspaceWithRunsResponse {
	runs := make([]RunResponse, len(ws.Runs))
	for i, r := range ws.Runs {
		runs[i] = ToRunResponse(r)
	}
	return WorkspaceWithRunsResponse{
		WorkspaceResponse: ToWorkspaceResponse(ws),
		Runs:              runs,
	}
}
