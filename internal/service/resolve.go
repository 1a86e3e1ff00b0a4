package service

import (
	"context"
	"errors"
	"fmt"

	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/store"
)

// resolveWorkspace looks ident up as a public id first and then as a slug.
func resolveWorkspace(ctx context.Context, workspaces store.WorkspaceStore, ident string) (*model.Workspace, error) {
	ws, err := workspaces.GetByPublicID(ctx, ident)
	if err == nil {
		return ws, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting workspace by public id: %w", err)
	}

	ws, err = workspaces.GetBySlug(ctx, ident)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace by slug: %w", err)
	}
	return ws, nil
}
