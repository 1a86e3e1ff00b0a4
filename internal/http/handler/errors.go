package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/service"
)

var errorStatus = []struct {
	err    error
	status int
	msg    string
}{
	{service.ErrWorkspaceNotFound, http.StatusNotFound, "workspace not found"},
	{service.ErrMemberNotFound, http.StatusNotFound, "member not found"},
	{service.ErrRunNotFound, http.StatusNotFound, "run not found"},
	{service.ErrInviteNotFound, http.StatusNotFound, "invitation not found"},
	{service.ErrWorkspaceAlreadyExists, http.StatusConflict, "workspace slug already exists"},
	{service.ErrMemberAlreadyExists, http.StatusConflict, "member already exists"},
	{service.ErrRunConflict, http.StatusConflict, "run with this identifier already exists"},
	{service.ErrEmailMismatch, http.StatusConflict, "invitation was issued to a different email"},
	{service.ErrEmailTaken, http.StatusConflict, "email already registered"},
	{model.ErrInvalidTransition, http.StatusConflict, "invalid membership transition"},
	{service.ErrInvalidSlug, http.StatusBadRequest, "invalid slug"},
	{service.ErrValueOutOfRange, http.StatusBadRequest, "numeric value out of range"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
}

// respondError writes the status mapped to a known domain error. Anything
// else is logged and reported as a 500 carrying fallback.
func respondError(c *gin.Context, err error, fallback string) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			c.JSON(e.status, gin.H{"error": e.msg})
			return
		}
	}

	slog.ErrorContext(c.Request.Context(), fallback, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
