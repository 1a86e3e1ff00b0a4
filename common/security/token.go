package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"launchloom.app/studio/core/config"
)

type TokenType string

const (
	TokenTypeAccess        TokenType = "access"
	TokenTypeRefresh       TokenType = "refresh"
	TokenTypePasswordReset TokenType = "password_reset"
)

const passwordResetTTL = time.Hour

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenType = errors.New("unexpected token type")
)

// Claims are the JWT claims issued by this service. Subject carries the
// user id, or the email for password reset tokens.
type Claims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 tokens with a shared secret.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(cfg config.SecurityConfig) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
	}
}

func (i *TokenIssuer) CreateAccessToken(subject string) (string, error) {
	return i.CreateToken(subject, TokenTypeAccess, i.accessTTL)
}

func (i *TokenIssuer) CreateRefreshToken(subject string) (string, error) {
	return i.CreateToken(subject, TokenTypeRefresh, i.refreshTTL)
}

func (i *TokenIssuer) CreatePasswordResetToken(email string) (string, error) {
	return i.CreateToken(email, TokenTypePasswordReset, passwordResetTTL)
}

func (i *TokenIssuer) CreateToken(subject string, typ TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", typ, err)
	}
	return signed, nil
}

// VerifyToken checks the signature, expiry and type of token and returns
// its subject.
func (i *TokenIssuer) VerifyToken(token string, want TokenType) (string, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: no subject", ErrInvalidToken)
	}
	if claims.Type != want {
		return "", fmt.Errorf("%w: expected %s", ErrWrongTokenType, want)
	}
	return claims.Subject, nil
}

// VerifyPasswordResetToken returns the email a reset token was issued for.
func (i *TokenIssuer) VerifyPasswordResetToken(token string) (string, bool) {
	email, err := i.VerifyToken(token, TokenTypePasswordReset)
	if err != nil {
		return "", false
	}
	return email, true
}
