package service

import "errors"

var (
	ErrWorkspaceNotFound      = errors.New("workspace not found")
	ErrWorkspaceAlreadyExists = errors.New("workspace already exists")
	ErrInvalidSlug            = errors.New("slug must be lowercase letters, digits and single hyphens")
	ErrMemberNotFound         = errors.New("member not found")
	ErrMemberAlreadyExists    = errors.New("member already exists")
	ErrRunNotFound            = errors.New("run not found")
	ErrRunConflict            = errors.New("run id already exists")
	ErrInviteNotFound         = errors.New("invitation not found")
	ErrEmailMismatch          = errors.New("authenticated email does not match invitation")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailTaken             = errors.New("email already registered")
	ErrValueOutOfRange        = errors.New("numeric value out of range")
)
