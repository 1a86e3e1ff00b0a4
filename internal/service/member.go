package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"launchloom.app/studio/common/id"
	"launchloom.app/studio/common/logger"
	"launchloom.app/studio/common/security"
	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/store"
)

type AddMemberInput struct {
	Email       string
	Role        model.WorkspaceRole
	InvitedByID *int64
}

type MemberService interface {
	List(ctx context.Context, workspaceIdent string) ([]model.WorkspaceMember, error)
	// Add upserts a member by email. An existing member gets the new role,
	// and is promoted to active when it was invited and the role is above viewer.
	Add(ctx context.Context, workspaceIdent string, input AddMemberInput) (*model.WorkspaceMember, error)
	Transition(ctx context.Context, workspaceIdent string, memberID int64, action model.MemberAction, userID *int64) (*model.WorkspaceMember, error)
	AcceptInvite(ctx context.Context, token string, userID int64) (*model.WorkspaceMember, error)
}

type memberService struct {
	workspaces store.WorkspaceStore
	members    store.WorkspaceMemberStore
	users      store.UserStore
	now        func() time.Time
}

func NewMemberService(workspaces store.WorkspaceStore, members store.WorkspaceMemberStore, users store.UserStore) MemberService {
	return &memberService{
		workspaces: workspaces,
		members:    members,
		users:      users,
		now:        time.Now,
	}
}

func (s *memberService) List(ctx context.Context, workspaceIdent string) ([]model.WorkspaceMember, error) {
	ws, err := resolveWorkspace(ctx, s.workspaces, workspaceIdent)
	if err != nil {
		return nil, err
	}
	members, err := s.members.ListByWorkspace(ctx, ws.ID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	return members, nil
}

func (s *memberService) Add(ctx context.Context, workspaceIdent string, input AddMemberInput) (*model.WorkspaceMember, error) {
	ws, err := resolveWorkspace(ctx, s.workspaces, workspaceIdent)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: logger.Ptr(ws.ID),
		Component:   "launchloom.service.member",
	})

	role := input.Role
	if role == "" {
		role = model.WorkspaceRoleViewer
	}
	now := s.now()

	existing, err := s.members.GetByEmail(ctx, ws.ID, model.NormalizeEmail(input.Email))
	switch {
	case err == nil:
		existing.ChangeRole(role, now)
		if err := s.members.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("updating member: %w", err)
		}
		slog.InfoContext(ctx, "member role updated",
			"member_id", existing.ID,
			"role", existing.Role,
			"status", existing.Status,
		)
		return existing, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("getting member: %w", err)
	}

	member := model.NewWorkspaceMember(ws.ID, input.Email, role, input.InvitedByID, now)
	member.ID = id.New()
	if role != model.WorkspaceRoleViewer {
		member.Activate(now)
	} else {
		token, err := security.GenerateToken(inviteTokenLength)
		if err != nil {
			return nil, fmt.Errorf("generating invite token: %w", err)
		}
		member.Invite(token)
	}

	if err := s.members.Create(ctx, member); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrMemberAlreadyExists
		}
		return nil, fmt.Errorf("creating member: %w", err)
	}

	slog.InfoContext(ctx, "member added",
		"member_id", member.ID,
		"role", member.Role,
		"status", member.Status,
	)

	return member, nil
}

func (s *memberService) Transition(ctx context.Context, workspaceIdent string, memberID int64, action model.MemberAction, userID *int64) (*model.WorkspaceMember, error) {
	ws, err := resolveWorkspace(ctx, s.workspaces, workspaceIdent)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: logger.Ptr(ws.ID),
		MemberID:    logger.Ptr(memberID),
	})

	member, err := s.members.GetByID(ctx, ws.ID, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("getting member: %w", err)
	}

	from := member.Status
	if err := member.Apply(action, userID, s.now()); err != nil {
		return nil, err
	}
	if err := s.members.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("updating member: %w", err)
	}

	slog.InfoContext(ctx, "member status changed",
		"action", action,
		"from", from,
		"to", member.Status,
	)

	return member, nil
}

func (s *memberService) AcceptInvite(ctx context.Context, token string, userID int64) (*model.WorkspaceMember, error) {
	member, err := s.members.GetByInviteToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if !strings.EqualFold(user.Email, member.Email) {
		slog.WarnContext(ctx, "email mismatch on invitation acceptance",
			"member_id", member.ID,
			"user_id", userID,
		)
		return nil, ErrEmailMismatch
	}

	if err := member.Accept(&userID, s.now()); err != nil {
		return nil, err
	}
	if err := s.members.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("updating member: %w", err)
	}

	slog.InfoContext(ctx, "invitation accepted",
		"member_id", member.ID,
		"workspace_id", member.WorkspaceID,
		"user_id", userID,
	)

	return member, nil
}
