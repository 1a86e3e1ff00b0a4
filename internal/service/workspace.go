package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"launchloom.app/studio/common"
	"launchloom.app/studio/common/id"
	"launchloom.app/studio/common/logger"
	"launchloom.app/studio/common/security"
	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/store"
)

const (
	slugFallback    = "workspace"
	maxSlugAttempts = 1000
	// leaves room for a numeric suffix inside the 255 char column
	maxSlugBaseLen    = 240
	inviteTokenLength = 32
)

// WorkspaceLoad selects which relations are fetched alongside a workspace.
type WorkspaceLoad struct {
	Members  bool
	RunLimit int32 // newest runs to embed, 0 for none
}

type MemberInput struct {
	Email string
	Role  model.WorkspaceRole
}

type CreateWorkspaceInput struct {
	Name        string
	Slug        *string
	Description *string
	Settings    map[string]any
	IsActive    *bool
	CreatedByID *int64
	Members     []MemberInput
}

// UpdateWorkspaceInput is a partial update; nil fields are left unchanged.
type UpdateWorkspaceInput struct {
	Name        *string
	Slug        *string
	Description *string
	Settings    map[string]any
	IsActive    *bool
}

type WorkspaceService interface {
	Create(ctx context.Context, input CreateWorkspaceInput) (*model.Workspace, error)
	// Get resolves ident as a public id, falling back to a slug.
	Get(ctx context.Context, ident string, load WorkspaceLoad) (*model.Workspace, error)
	GetByPublicID(ctx context.Context, publicID string, load WorkspaceLoad) (*model.Workspace, error)
	GetBySlug(ctx context.Context, slug string, load WorkspaceLoad) (*model.Workspace, error)
	List(ctx context.Context, limit, offset int32) ([]model.Workspace, int64, error)
	Update(ctx context.Context, ident string, input UpdateWorkspaceInput) (*model.Workspace, error)
}

type workspaceService struct {
	workspaces store.WorkspaceStore
	members    store.WorkspaceMemberStore
	runs       store.WorkspaceRunStore
	txRunner   TxRunner
	now        func() time.Time
}

func NewWorkspaceService(
	workspaces store.WorkspaceStore,
	members store.WorkspaceMemberStore,
	runs store.WorkspaceRunStore,
	txRunner TxRunner,
) WorkspaceService {
	return &workspaceService{
		workspaces: workspaces,
		members:    members,
		runs:       runs,
		txRunner:   txRunner,
		now:        time.Now,
	}
}

func (s *workspaceService) Create(ctx context.Context, input CreateWorkspaceInput) (*model.Workspace, error) {
	sc := logger.StartSpan(ctx, "service.workspace.create")
	defer sc.End()
	ctx = logger.WithLogFields(sc.Context(), logger.LogFields{Component: "launchloom.service.workspace"})

	slug, err := s.chooseSlug(ctx, input.Name, input.Slug)
	if err != nil {
		sc.RecordError(err)
		return nil, err
	}

	ws := model.NewWorkspace(input.Name, slug)
	ws.ID = id.New()
	ws.Description = input.Description
	ws.CreatedByID = input.CreatedByID
	if input.Settings != nil {
		ws.Settings = input.Settings
	}
	if input.IsActive != nil && !*input.IsActive {
		ws.Deactivate()
	}

	members, err := s.initialMembers(ws.ID, input.Members, input.CreatedByID)
	if err != nil {
		sc.RecordError(err)
		return nil, err
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Workspaces().Create(ctx, ws); err != nil {
			return err
		}
		for i := range members {
			if err := stores.WorkspaceMembers().Create(ctx, &members[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		sc.RecordError(err)
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrWorkspaceAlreadyExists
		}
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	ws.Members = members

	slog.InfoContext(ctx, "workspace created",
		"workspace_id", ws.ID,
		"public_id", ws.PublicID,
		"slug", ws.Slug,
		"members", len(members),
	)

	return ws, nil
}

// chooseSlug validates an explicit slug or derives a free one from name.
// Explicit slugs are never suffixed.
func (s *workspaceService) chooseSlug(ctx context.Context, name string, slug *string) (string, error) {
	if slug == nil || *slug == "" {
		return s.ensureSlug(ctx, name)
	}
	if !common.IsSlug(*slug) {
		return "", ErrInvalidSlug
	}
	exists, err := s.workspaces.SlugExists(ctx, *slug)
	if err != nil {
		return "", fmt.Errorf("checking slug availability: %w", err)
	}
	if exists {
		return "", ErrWorkspaceAlreadyExists
	}
	return *slug, nil
}

func (s *workspaceService) ensureSlug(ctx context.Context, name string) (string, error) {
	base, err := common.Slugify(name, slugFallback)
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}
	if len(base) > maxSlugBaseLen {
		base = strings.TrimRight(base[:maxSlugBaseLen], "-")
	}

	// base, then base-2, base-3, ...
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		candidate := base
		if attempt > 1 {
			candidate = fmt.Sprintf("%s-%d", base, attempt)
		}
		exists, err := s.workspaces.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}

// initialMembers builds the member rows for a new workspace. Owners join
// immediately, everyone else gets an invite. Repeated emails collapse into
// one member carrying the last role given.
func (s *workspaceService) initialMembers(workspaceID int64, inputs []MemberInput, invitedByID *int64) ([]model.WorkspaceMember, error) {
	now := s.now()
	members := make([]model.WorkspaceMember, 0, len(inputs))
	index := make(map[string]int, len(inputs))

	for _, in := range inputs {
		email := model.NormalizeEmail(in.Email)
		if i, ok := index[email]; ok {
			members[i].Role = in.Role
			continue
		}
		index[email] = len(members)
		members = append(members, *model.NewWorkspaceMember(workspaceID, email, in.Role, invitedByID, now))
	}

	for i := range members {
		m := &members[i]
		m.ID = id.New()
		if m.Role == model.WorkspaceRoleOwner {
			m.Activate(now)
			continue
		}
		token, err := security.GenerateToken(inviteTokenLength)
		if err != nil {
			return nil, fmt.Errorf("generating invite token: %w", err)
		}
		m.Invite(token)
	}
	return members, nil
}

func (s *workspaceService) Get(ctx context.Context, ident string, load WorkspaceLoad) (*model.Workspace, error) {
	ws, err := resolveWorkspace(ctx, s.workspaces, ident)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, ws, load)
}

func (s *workspaceService) GetByPublicID(ctx context.Context, publicID string, load WorkspaceLoad) (*model.Workspace, error) {
	ws, err := s.workspaces.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}
	return s.load(ctx, ws, load)
}

func (s *workspaceService) GetBySlug(ctx context.Context, slug string, load WorkspaceLoad) (*model.Workspace, error) {
	ws, err := s.workspaces.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}
	return s.load(ctx, ws, load)
}

func (s *workspaceService) load(ctx context.Context, ws *model.Workspace, load WorkspaceLoad) (*model.Workspace, error) {
	if load.Members {
		members, err := s.members.ListByWorkspace(ctx, ws.ID)
		if err != nil {
			return nil, fmt.Errorf("listing members: %w", err)
		}
		ws.Members = members
	}
	if load.RunLimit > 0 {
		runs, err := s.runs.ListByWorkspace(ctx, ws.ID, load.RunLimit, 0)
		if err != nil {
			return nil, fmt.Errorf("listing runs: %w", err)
		}
		ws.Runs = runs
	}
	return ws, nil
}

func (s *workspaceService) List(ctx context.Context, limit, offset int32) ([]model.Workspace, int64, error) {
	items, err := s.workspaces.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing workspaces: %w", err)
	}
	total, err := s.workspaces.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting workspaces: %w", err)
	}

	ids := make([]int64, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	members, err := s.members.ListByWorkspaces(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("loading members: %w", err)
	}
	for i := range items {
		items[i].Members = members[items[i].ID]
	}

	return items, total, nil
}

func (s *workspaceService) Update(ctx context.Context, ident string, input UpdateWorkspaceInput) (*model.Workspace, error) {
	ws, err := resolveWorkspace(ctx, s.workspaces, ident)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: logger.Ptr(ws.ID)})

	// An empty slug would otherwise re-derive one from the name and move
	// the workspace off its current slug.
	if input.Slug != nil && *input.Slug == "" {
		return nil, ErrInvalidSlug
	}
	if input.Slug != nil && *input.Slug != ws.Slug {
		slug, err := s.chooseSlug(ctx, ws.Name, input.Slug)
		if err != nil {
			return nil, err
		}
		ws.Slug = slug
	}
	if input.Name != nil {
		ws.Name = *input.Name
	}
	if input.Description != nil {
		ws.Description = input.Description
	}
	if input.Settings != nil {
		ws.Settings = input.Settings
	}
	if input.IsActive != nil {
		if *input.IsActive {
			ws.Activate()
		} else {
			ws.Deactivate()
		}
	}

	if err := s.workspaces.Update(ctx, ws); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrWorkspaceAlreadyExists
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("updating workspace: %w", err)
	}

	slog.InfoContext(ctx, "workspace updated", "slug", ws.Slug, "is_active", ws.IsActive)

	return s.load(ctx, ws, WorkspaceLoad{Members: true})
}
