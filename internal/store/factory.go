package store

import (
	"launchloom.app/studio/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.queries)
}

func (s *Stores) WorkspaceMembers() WorkspaceMemberStore {
	return newWorkspaceMemberStore(s.queries)
}

func (s *Stores) WorkspaceRuns() WorkspaceRunStore {
	return newWorkspaceRunStore(s.queries)
}
