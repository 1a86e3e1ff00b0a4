package store

import (
	"context"

	"launchloom.app/studio/core/db/sqlc"
	"launchloom.app/studio/internal/model"
)

type workspaceMemberStore struct {
	queries *sqlc.Queries
}

func newWorkspaceMemberStore(queries *sqlc.Queries) WorkspaceMemberStore {
	return &workspaceMemberStore{queries: queries}
}

func (s *workspaceMemberStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.WorkspaceMember, error) {
	row, err := s.queries.GetWorkspaceMember(ctx, sqlc.GetWorkspaceMemberParams{
		WorkspaceID: workspaceID,
		ID:          id,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toWorkspaceMemberModel(row), nil
}

func (s *workspaceMemberStore) GetByEmail(ctx context.Context, workspaceID int64, email string) (*model.WorkspaceMember, error) {
	row, err := s.queries.GetWorkspaceMemberByEmail(ctx, sqlc.GetWorkspaceMemberByEmailParams{
		WorkspaceID: workspaceID,
		Email:       model.NormalizeEmail(email),
	})
	if err != nil {
		return nil, translate(err)
	}
	return toWorkspaceMemberModel(row), nil
}

func (s *workspaceMemberStore) GetByInviteToken(ctx context.Context, token string) (*model.WorkspaceMember, error) {
	row, err := s.queries.GetWorkspaceMemberByInviteToken(ctx, &token)
	if err != nil {
		return nil, translate(err)
	}
	return toWorkspaceMemberModel(row), nil
}

func (s *workspaceMemberStore) Create(ctx context.Context, member *model.WorkspaceMember) error {
	row, err := s.queries.CreateWorkspaceMember(ctx, sqlc.CreateWorkspaceMemberParams{
		ID:          member.ID,
		WorkspaceID: member.WorkspaceID,
		UserID:      member.UserID,
		Email:       model.NormalizeEmail(member.Email),
		Role:        sqlc.WorkspaceRole(member.Role),
		Status:      sqlc.MembershipStatus(member.Status),
		InviteToken: member.InviteToken,
		InvitedAt:   toTimestamptz(&member.InvitedAt),
		JoinedAt:    toTimestamptz(member.JoinedAt),
		InvitedByID: member.InvitedByID,
	})
	if err != nil {
		return translate(err)
	}
	*member = *toWorkspaceMemberModel(row)
	return nil
}

func (s *workspaceMemberStore) Update(ctx context.Context, member *model.WorkspaceMember) error {
	row, err := s.queries.UpdateWorkspaceMember(ctx, sqlc.UpdateWorkspaceMemberParams{
		ID:          member.ID,
		UserID:      member.UserID,
		Role:        sqlc.WorkspaceRole(member.Role),
		Status:      sqlc.MembershipStatus(member.Status),
		InviteToken: member.InviteToken,
		JoinedAt:    toTimestamptz(member.JoinedAt),
	})
	if err != nil {
		return translate(err)
	}
	*member = *toWorkspaceMemberModel(row)
	return nil
}

func (s *workspaceMemberStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error) {
	rows, err := s.queries.ListWorkspaceMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return toWorkspaceMemberModels(rows), nil
}

func (s *workspaceMemberStore) ListByWorkspaces(ctx context.Context, workspaceIDs []int64) (map[int64][]model.WorkspaceMember, error) {
	result := make(map[int64][]model.WorkspaceMember, len(workspaceIDs))
	if len(workspaceIDs) == 0 {
		return result, nil
	}
	rows, err := s.queries.ListWorkspaceMembersByWorkspaceIDs(ctx, workspaceIDs)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.WorkspaceID] = append(result[row.WorkspaceID], *toWorkspaceMemberModel(row))
	}
	return result, nil
}

func toWorkspaceMemberModel(row sqlc.WorkspaceMember) *model.WorkspaceMember {
	return &model.WorkspaceMember{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		UserID:      row.UserID,
		Email:       row.Email,
		Role:        model.WorkspaceRole(row.Role),
		Status:      model.MembershipStatus(row.Status),
		InviteToken: row.InviteToken,
		InvitedAt:   row.InvitedAt.Time,
		JoinedAt:    fromTimestamptz(row.JoinedAt),
		InvitedByID: row.InvitedByID,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toWorkspaceMemberModels(rows []sqlc.WorkspaceMember) []model.WorkspaceMember {
	result := make([]model.WorkspaceMember, len(rows))
	for i, row := range rows {
		result[i] = *toWorkspaceMemberModel(row)
	}
	return result
}
