package store

import (
	"context"

	"launchloom.app/studio/core/db/sqlc"
	"launchloom.app/studio/internal/model"
)

type workspaceStore struct {
	queries *sqlc.Queries
}

func newWorkspaceStore(queries *sqlc.Queries) WorkspaceStore {
	return &workspaceStore{queries: queries}
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspace(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) GetByPublicID(ctx context.Context, publicID string) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspaceByPublicID(ctx, publicID)
	if err != nil {
		return nil, translate(err)
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) GetBySlug(ctx context.Context, slug string) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspaceBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err)
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	return s.queries.WorkspaceSlugExists(ctx, slug)
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	settings, err := encodeJSON(ws.Settings, ws.Settings == nil, "{}")
	if err != nil {
		return err
	}
	row, err := s.queries.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		ID:          ws.ID,
		PublicID:    ws.PublicID,
		Name:        ws.Name,
		Slug:        ws.Slug,
		Description: ws.Description,
		CreatedByID: ws.CreatedByID,
		Settings:    settings,
		IsActive:    ws.IsActive,
	})
	if err != nil {
		return translate(err)
	}
	members, runs := ws.Members, ws.Runs
	*ws = *toWorkspaceModel(row)
	ws.Members, ws.Runs = members, runs
	return nil
}

func (s *workspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	settings, err := encodeJSON(ws.Settings, ws.Settings == nil, "{}")
	if err != nil {
		return err
	}
	row, err := s.queries.UpdateWorkspace(ctx, sqlc.UpdateWorkspaceParams{
		ID:          ws.ID,
		Name:        ws.Name,
		Slug:        ws.Slug,
		Description: ws.Description,
		Settings:    settings,
		IsActive:    ws.IsActive,
	})
	if err != nil {
		return translate(err)
	}
	members, runs := ws.Members, ws.Runs
	*ws = *toWorkspaceModel(row)
	ws.Members, ws.Runs = members, runs
	return nil
}

func (s *workspaceStore) List(ctx context.Context, limit, offset int32) ([]model.Workspace, error) {
	rows, err := s.queries.ListWorkspaces(ctx, sqlc.ListWorkspacesParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return toWorkspaceModels(rows), nil
}

func (s *workspaceStore) Count(ctx context.Context) (int64, error) {
	return s.queries.CountWorkspaces(ctx)
}

func toWorkspaceModel(row sqlc.Workspace) *model.Workspace {
	settings := decodeObject("settings", row.Settings)
	if settings == nil {
		settings = map[string]any{}
	}
	return &model.Workspace{
		ID:          row.ID,
		PublicID:    row.PublicID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		CreatedByID: row.CreatedByID,
		Settings:    settings,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toWorkspaceModels(rows []sqlc.Workspace) []model.Workspace {
	result := make([]model.Workspace, len(rows))
	for i, row := range rows {
		result[i] = *toWorkspaceModel(row)
	}
	return result
}
