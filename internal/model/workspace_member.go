package model

import (
	"errors"
	"time"
)

// ErrInvalidTransition is returned when a membership status change is not
// allowed from the member's current status.
var ErrInvalidTransition = errors.New("invalid membership transition")

type WorkspaceRole string

const (
	WorkspaceRoleOwner  WorkspaceRole = "owner"
	WorkspaceRoleAdmin  WorkspaceRole = "admin"
	WorkspaceRoleEditor WorkspaceRole = "editor"
	WorkspaceRoleViewer WorkspaceRole = "viewer"
)

func (r WorkspaceRole) IsValid() bool {
	switch r {
	case WorkspaceRoleOwner, WorkspaceRoleAdmin, WorkspaceRoleEditor, WorkspaceRoleViewer:
		return true
	}
	return false
}

type MembershipStatus string

const (
	MembershipStatusInvited   MembershipStatus = "invited"
	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusSuspended MembershipStatus = "suspended"
	MembershipStatusRevoked   MembershipStatus = "revoked"
)

func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipStatusInvited, MembershipStatusActive, MembershipStatusSuspended, MembershipStatusRevoked:
		return true
	}
	return false
}

// MemberAction names a status transition requested through the API.
type MemberAction string

const (
	MemberActionAccept  MemberAction = "accept"
	MemberActionSuspend MemberAction = "suspend"
	MemberActionRevoke  MemberAction = "revoke"
)

func (a MemberAction) IsValid() bool {
	switch a {
	case MemberActionAccept, MemberActionSuspend, MemberActionRevoke:
		return true
	}
	return false
}

type WorkspaceMember struct {
	ID          int64            `json:"id"`
	WorkspaceID int64            `json:"workspace_id"`
	UserID      *int64           `json:"user_id,omitempty"`
	Email       string           `json:"email"`
	Role        WorkspaceRole    `json:"role"`
	Status      MembershipStatus `json:"status"`
	InviteToken *string          `json:"-"`
	InvitedAt   time.Time        `json:"invited_at"`
	JoinedAt    *time.Time       `json:"joined_at,omitempty"`
	InvitedByID *int64           `json:"invited_by_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewWorkspaceMember returns an invited member with a normalized email.
// Callers decide whether to activate it or attach an invite token.
func NewWorkspaceMember(workspaceID int64, email string, role WorkspaceRole, invitedByID *int64, now time.Time) *WorkspaceMember {
	if role == "" {
		role = WorkspaceRoleViewer
	}
	return &WorkspaceMember{
		WorkspaceID: workspaceID,
		Email:       NormalizeEmail(email),
		Role:        role,
		Status:      MembershipStatusInvited,
		InvitedAt:   now,
		InvitedByID: invitedByID,
	}
}

// Invite marks the member as awaiting acceptance of token.
func (m *WorkspaceMember) Invite(token string) {
	m.Status = MembershipStatusInvited
	m.InviteToken = &token
	m.JoinedAt = nil
}

// Activate makes the member active immediately, bypassing the invite flow.
func (m *WorkspaceMember) Activate(now time.Time) {
	m.Status = MembershipStatusActive
	m.InviteToken = nil
	if m.JoinedAt == nil {
		m.JoinedAt = &now
	}
}

// ChangeRole updates the role in place. An invited member given any role
// above viewer is promoted to active.
func (m *WorkspaceMember) ChangeRole(role WorkspaceRole, now time.Time) {
	m.Role = role
	if m.Status == MembershipStatusInvited && role != WorkspaceRoleViewer {
		m.Activate(now)
	}
}

// Accept moves an invited member to active and optionally links the user
// that accepted the invite.
func (m *WorkspaceMember) Accept(userID *int64, now time.Time) error {
	if m.Status != MembershipStatusInvited {
		return ErrInvalidTransition
	}
	if userID != nil {
		m.UserID = userID
	}
	m.Activate(now)
	return nil
}

func (m *WorkspaceMember) Suspend() error {
	if m.Status != MembershipStatusActive {
		return ErrInvalidTransition
	}
	m.Status = MembershipStatusSuspended
	return nil
}

// Revoke is terminal.
func (m *WorkspaceMember) Revoke() error {
	if m.Status == MembershipStatusRevoked {
		return ErrInvalidTransition
	}
	m.Status = MembershipStatusRevoked
	m.InviteToken = nil
	return nil
}

// Apply runs the transition named by action.
func (m *WorkspaceMember) Apply(action MemberAction, userID *int64, now time.Time) error {
	switch action {
	case MemberActionAccept:
		return m.Accept(userID, now)
	case MemberActionSuspend:
		return m.Suspend()
	case MemberActionRevoke:
		return m.Revoke()
	}
	return ErrInvalidTransition
}
