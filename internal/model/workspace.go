package model

import (
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	ID          int64          `json:"id"`
	PublicID    string         `json:"public_id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description *string        `json:"description,omitempty"`
	CreatedByID *int64         `json:"created_by_id,omitempty"`
	Settings    map[string]any `json:"settings"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Populated only when the caller asks for them.
	Members []WorkspaceMember `json:"members,omitempty"`
	Runs    []WorkspaceRun    `json:"runs,omitempty"`
}

// NewWorkspace returns an active workspace with a fresh public id and empty
// settings. The internal id is assigned by the caller.
func NewWorkspace(name, slug string) *Workspace {
	return &Workspace{
		PublicID: uuid.NewString(),
		Name:     name,
		Slug:     slug,
		Settings: map[string]any{},
		IsActive: true,
	}
}

func (w *Workspace) Activate() {
	w.IsActive = true
}

func (w *Workspace) Deactivate() {
	w.IsActive = false
}
