package dto

import (
	"time"

	"launchloom.app/studio/internal/model"
)

type AddMemberRequest struct {
	Email string              `json:"email" binding:"required,email,max=320"`
	Role  model.WorkspaceRole `json:"role,omitempty" binding:"omitempty,workspace_role"`
}

type MemberActionURI struct {
	WorkspaceID string             `uri:"workspace_id" binding:"required"`
	MemberID    int64              `uri:"member_id" binding:"required"`
	Action      model.MemberAction `uri:"action" binding:"required,member_action"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}

type MemberResponse struct {
	ID          int64                  `json:"id,string"`
	WorkspaceID int64                  `json:"workspace_id,string"`
	UserID      *int64                 `json:"user_id,omitempty,string"`
	Email       string                 `json:"email"`
	Role        model.WorkspaceRole    `json:"role"`
	Status      model.MembershipStatus `json:"status"`
	InvitedAt   time.Time              `json:"invited_at"`
	JoinedAt    *time.Time             `json:"joined_at"`
}

func ToMemberResponse(m model.WorkspaceMember) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Email:       m.Email,
		Role:        m.Role,
		Status:      m.Status,
		InvitedAt:   m.InvitedAt,
		JoinedAt:    m.JoinedAt,
	}
}
