package service_test

import (
	"context"

	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/queue"
	"launchloom.app/studio/internal/service"
	"launchloom.app/studio/internal/store"
)

type mockUserStore struct {
	createFn     func(ctx context.Context, user *model.User) error
	getByIDFn    func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn func(ctx context.Context, email string) (*model.User, error)
	createCalls  int
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrNotFound
}

type mockWorkspaceStore struct {
	getByIDFn       func(ctx context.Context, id int64) (*model.Workspace, error)
	getByPublicIDFn func(ctx context.Context, publicID string) (*model.Workspace, error)
	getBySlugFn     func(ctx context.Context, slug string) (*model.Workspace, error)
	slugExistsFn    func(ctx context.Context, slug string) (bool, error)
	createFn        func(ctx context.Context, ws *model.Workspace) error
	updateFn        func(ctx context.Context, ws *model.Workspace) error
	listFn          func(ctx context.Context, limit, offset int32) ([]model.Workspace, error)
	countFn         func(ctx context.Context) (int64, error)
	createCalls     int
	updateCalls     int
}

func (m *mockWorkspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceStore) GetByPublicID(ctx context.Context, publicID string) (*model.Workspace, error) {
	if m.getByPublicIDFn != nil {
		return m.getByPublicIDFn(ctx, publicID)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceStore) GetBySlug(ctx context.Context, slug string) (*model.Workspace, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.slugExistsFn != nil {
		return m.slugExistsFn(ctx, slug)
	}
	return false, nil
}

func (m *mockWorkspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) List(ctx context.Context, limit, offset int32) ([]model.Workspace, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit, offset)
	}
	return []model.Workspace{}, nil
}

func (m *mockWorkspaceStore) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockWorkspaceMemberStore struct {
	getByIDFn          func(ctx context.Context, workspaceID, id int64) (*model.WorkspaceMember, error)
	getByEmailFn       func(ctx context.Context, workspaceID int64, email string) (*model.WorkspaceMember, error)
	getByInviteTokenFn func(ctx context.Context, token string) (*model.WorkspaceMember, error)
	createFn           func(ctx context.Context, member *model.WorkspaceMember) error
	updateFn           func(ctx context.Context, member *model.WorkspaceMember) error
	listByWorkspaceFn  func(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error)
	listByWorkspacesFn func(ctx context.Context, workspaceIDs []int64) (map[int64][]model.WorkspaceMember, error)
	createCalls        int
	updateCalls        int
}

func (m *mockWorkspaceMemberStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.WorkspaceMember, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, workspaceID, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceMemberStore) GetByEmail(ctx context.Context, workspaceID int64, email string) (*model.WorkspaceMember, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, workspaceID, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceMemberStore) GetByInviteToken(ctx context.Context, token string) (*model.WorkspaceMember, error) {
	if m.getByInviteTokenFn != nil {
		return m.getByInviteTokenFn(ctx, token)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceMemberStore) Create(ctx context.Context, member *model.WorkspaceMember) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, member)
	}
	return nil
}

func (m *mockWorkspaceMemberStore) Update(ctx context.Context, member *model.WorkspaceMember) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, member)
	}
	return nil
}

func (m *mockWorkspaceMemberStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID)
	}
	return []model.WorkspaceMember{}, nil
}

func (m *mockWorkspaceMemberStore) ListByWorkspaces(ctx context.Context, workspaceIDs []int64) (map[int64][]model.WorkspaceMember, error) {
	if m.listByWorkspacesFn != nil {
		return m.listByWorkspacesFn(ctx, workspaceIDs)
	}
	return map[int64][]model.WorkspaceMember{}, nil
}

type mockWorkspaceRunStore struct {
	createFn           func(ctx context.Context, run *model.WorkspaceRun) error
	getByIdentifierFn  func(ctx context.Context, workspaceIdent, runID string) (*model.WorkspaceRun, error)
	listByWorkspaceFn  func(ctx context.Context, workspaceID int64, limit, offset int32) ([]model.WorkspaceRun, error)
	countByWorkspaceFn func(ctx context.Context, workspaceID int64) (int64, error)
	updateResultsFn    func(ctx context.Context, run *model.WorkspaceRun) error
	createCalls        int
	updateCalls        int
}

func (m *mockWorkspaceRunStore) Create(ctx context.Context, run *model.WorkspaceRun) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, run)
	}
	return nil
}

func (m *mockWorkspaceRunStore) GetByIdentifier(ctx context.Context, workspaceIdent, runID string) (*model.WorkspaceRun, error) {
	if m.getByIdentifierFn != nil {
		return m.getByIdentifierFn(ctx, workspaceIdent, runID)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceRunStore) ListByWorkspace(ctx context.Context, workspaceID int64, limit, offset int32) ([]model.WorkspaceRun, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID, limit, offset)
	}
	return []model.WorkspaceRun{}, nil
}

func (m *mockWorkspaceRunStore) CountByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	if m.countByWorkspaceFn != nil {
		return m.countByWorkspaceFn(ctx, workspaceID)
	}
	return 0, nil
}

func (m *mockWorkspaceRunStore) UpdateResults(ctx context.Context, run *model.WorkspaceRun) error {
	m.updateCalls++
	if m.updateResultsFn != nil {
		return m.updateResultsFn(ctx, run)
	}
	return nil
}

type mockStoreProvider struct {
	work    store.WorkspaceStore
	members store.WorkspaceMemberStore
}

func (m *mockStoreProvider) Workspaces() store.WorkspaceStore {
	return m.work
}

func (m *mockStoreProvider) WorkspaceMembers() store.WorkspaceMemberStore {
	return m.members
}

type mockTxRunner struct {
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(&mockStoreProvider{})
}

// memoryBackend wires the mocks to shared maps so multi-step scenarios can
// observe their own writes.
type memoryBackend struct {
	workspaces map[int64]*model.Workspace
	members    map[int64]*model.WorkspaceMember
	runs       map[string]*model.WorkspaceRun

	workStore   *mockWorkspaceStore
	memberStore *mockWorkspaceMemberStore
	runStore    *mockWorkspaceRunStore
	txRunner    *mockTxRunner
}

func newMemoryBackend() *memoryBackend {
	b := &memoryBackend{
		workspaces: map[int64]*model.Workspace{},
		members:    map[int64]*model.WorkspaceMember{},
		runs:       map[string]*model.WorkspaceRun{},
	}

	b.workStore = &mockWorkspaceStore{
		getByPublicIDFn: func(_ context.Context, publicID string) (*model.Workspace, error) {
			for _, ws := range b.workspaces {
				if ws.PublicID == publicID {
					cp := *ws
					return &cp, nil
				}
			}
			return nil, store.ErrNotFound
		},
		getBySlugFn: func(_ context.Context, slug string) (*model.Workspace, error) {
			for _, ws := range b.workspaces {
				if ws.Slug == slug {
					cp := *ws
					return &cp, nil
				}
			}
			return nil, store.ErrNotFound
		},
		slugExistsFn: func(_ context.Context, slug string) (bool, error) {
			for _, ws := range b.workspaces {
				if ws.Slug == slug {
					return true, nil
				}
			}
			return false, nil
		},
		createFn: func(_ context.Context, ws *model.Workspace) error {
			for _, existing := range b.workspaces {
				if existing.Slug == ws.Slug {
					return store.ErrDuplicate
				}
			}
			cp := *ws
			b.workspaces[ws.ID] = &cp
			return nil
		},
		updateFn: func(_ context.Context, ws *model.Workspace) error {
			cp := *ws
			b.workspaces[ws.ID] = &cp
			return nil
		},
		countFn: func(_ context.Context) (int64, error) {
			return int64(len(b.workspaces)), nil
		},
	}

	b.memberStore = &mockWorkspaceMemberStore{
		getByEmailFn: func(_ context.Context, workspaceID int64, email string) (*model.WorkspaceMember, error) {
			for _, m := range b.members {
				if m.WorkspaceID == workspaceID && m.Email == email {
					cp := *m
					return &cp, nil
				}
			}
			return nil, store.ErrNotFound
		},
		createFn: func(_ context.Context, member *model.WorkspaceMember) error {
			for _, m := range b.members {
				if m.WorkspaceID == member.WorkspaceID && m.Email == member.Email {
					return store.ErrDuplicate
				}
			}
			cp := *member
			b.members[member.ID] = &cp
			return nil
		},
		updateFn: func(_ context.Context, member *model.WorkspaceMember) error {
			cp := *member
			b.members[member.ID] = &cp
			return nil
		},
		listByWorkspaceFn: func(_ context.Context, workspaceID int64) ([]model.WorkspaceMember, error) {
			out := []model.WorkspaceMember{}
			for _, m := range b.members {
				if m.WorkspaceID == workspaceID {
					out = append(out, *m)
				}
			}
			return out, nil
		},
	}

	b.runStore = &mockWorkspaceRunStore{
		createFn: func(_ context.Context, run *model.WorkspaceRun) error {
			if _, ok := b.runs[run.RunID]; ok {
				return store.ErrDuplicate
			}
			cp := *run
			b.runs[run.RunID] = &cp
			return nil
		},
		listByWorkspaceFn: func(_ context.Context, workspaceID int64, limit, _ int32) ([]model.WorkspaceRun, error) {
			out := []model.WorkspaceRun{}
			for _, r := range b.runs {
				if r.WorkspaceID == workspaceID && int32(len(out)) < limit {
					out = append(out, *r)
				}
			}
			return out, nil
		},
		countByWorkspaceFn: func(_ context.Context, workspaceID int64) (int64, error) {
			var n int64
			for _, r := range b.runs {
				if r.WorkspaceID == workspaceID {
					n++
				}
			}
			return n, nil
		},
	}

	b.txRunner = &mockTxRunner{
		withTxFn: func(_ context.Context, fn func(stores service.StoreProvider) error) error {
			return fn(&mockStoreProvider{work: b.workStore, members: b.memberStore})
		},
	}

	return b
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

type mockProducer struct {
	publishFn func(ctx context.Context, event queue.RunEvent) error
	events    []queue.RunEvent
}

func (m *mockProducer) Publish(ctx context.Context, event queue.RunEvent) error {
	m.events = append(m.events, event)
	if m.publishFn != nil {
		return m.publishFn(ctx, event)
	}
	return nil
}

func (m *mockProducer) Close() error {
	return nil
}
