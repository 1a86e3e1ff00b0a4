package cache

import (
	"fmt"
	"strings"
)

// MakeKey joins parts with ":".
func MakeKey(parts ...any) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprint(p)
	}
	return strings.Join(s, ":")
}

func WorkspaceKey(publicID string, suffix ...string) string {
	return scopedKey("workspace", publicID, suffix)
}

func RunKey(runID string, suffix ...string) string {
	return scopedKey("run", runID, suffix)
}

func UserKey(userID int64, suffix ...string) string {
	return scopedKey("user", userID, suffix)
}

// RateLimitKey names the counter for one client in one window.
func RateLimitKey(client string, window int64) string {
	return MakeKey("ratelimit", client, window)
}

func scopedKey(scope string, id any, suffix []string) string {
	parts := []any{scope, id}
	for _, s := range suffix {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return MakeKey(parts...)
}
