package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"launchloom.app/studio/common/id"
	"launchloom.app/studio/common/logger"
	"launchloom.app/studio/common/security"
	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/store"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*model.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Authenticate resolves an access token to an active user.
	Authenticate(ctx context.Context, accessToken string) (*model.User, error)
}

type authService struct {
	users  store.UserStore
	tokens *security.TokenIssuer
	now    func() time.Time
}

func NewAuthService(users store.UserStore, tokens *security.TokenIssuer) AuthService {
	return &authService{users: users, tokens: tokens, now: time.Now}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, *TokenPair, error) {
	email := model.NormalizeEmail(input.Email)

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, nil, ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return nil, nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.now()
	user := &model.User{
		ID:           id.New(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("creating user: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(user.ID)})
	slog.InfoContext(ctx, "user registered")

	pair, err := s.issue(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, *TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("getting user: %w", err)
	}
	if !user.IsActive || !security.VerifyPassword(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issue(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	user, err := s.userFromToken(ctx, refreshToken, security.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	return s.issue(user.ID)
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (*model.User, error) {
	return s.userFromToken(ctx, accessToken, security.TokenTypeAccess)
}

func (s *authService) userFromToken(ctx context.Context, token string, typ security.TokenType) (*model.User, error) {
	subject, err := s.tokens.VerifyToken(token, typ)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) issue(userID int64) (*TokenPair, error) {
	subject := strconv.FormatInt(userID, 10)
	access, err := s.tokens.CreateAccessToken(subject)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.CreateRefreshToken(subject)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}
