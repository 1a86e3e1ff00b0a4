package store

import (
	"context"
	"errors"

	"launchloom.app/studio/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a write violates a unique constraint
var ErrDuplicate = errors.New("duplicate")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// WorkspaceStore defines the contract for workspace data access
type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	GetByPublicID(ctx context.Context, publicID string) (*model.Workspace, error)
	GetBySlug(ctx context.Context, slug string) (*model.Workspace, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, ws *model.Workspace) error
	Update(ctx context.Context, ws *model.Workspace) error
	List(ctx context.Context, limit, offset int32) ([]model.Workspace, error)
	Count(ctx context.Context) (int64, error)
}

// WorkspaceMemberStore defines the contract for workspace membership data access
type WorkspaceMemberStore interface {
	GetByID(ctx context.Context, workspaceID, id int64) (*model.WorkspaceMember, error)
	GetByEmail(ctx context.Context, workspaceID int64, email string) (*model.WorkspaceMember, error)
	GetByInviteToken(ctx context.Context, token string) (*model.WorkspaceMember, error)
	Create(ctx context.Context, member *model.WorkspaceMember) error
	Update(ctx context.Context, member *model.WorkspaceMember) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error)
	// ListByWorkspaces batch-loads members keyed by workspace id.
	ListByWorkspaces(ctx context.Context, workspaceIDs []int64) (map[int64][]model.WorkspaceMember, error)
}

// WorkspaceRunStore defines the contract for pipeline run data access
type WorkspaceRunStore interface {
	Create(ctx context.Context, run *model.WorkspaceRun) error
	// GetByIdentifier matches the workspace by public id or slug in a single query.
	GetByIdentifier(ctx context.Context, workspaceIdent, runID string) (*model.WorkspaceRun, error)
	ListByWorkspace(ctx context.Context, workspaceID int64, limit, offset int32) ([]model.WorkspaceRun, error)
	CountByWorkspace(ctx context.Context, workspaceID int64) (int64, error)
	UpdateResults(ctx context.Context, run *model.WorkspaceRun) error
}
