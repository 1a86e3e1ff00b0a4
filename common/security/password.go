// Package security issues and verifies JWTs and hashes passwords for the auth
// endpoints. The password-reset, API key and CSRF helpers are
// general-purpose and not mounted on any route.
package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const tokenBytes = 32

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken returns length random bytes, URL-safe base64 encoded.
func GenerateToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func GenerateAPIKey() (string, error) {
	return GenerateToken(tokenBytes)
}

func CreateCSRFToken() (string, error) {
	return GenerateToken(tokenBytes)
}

// ValidateCSRFToken compares in constant time.
func ValidateCSRFToken(token, stored string) bool {
	if token == "" || stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(stored)) == 1
}
