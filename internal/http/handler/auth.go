package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"launchloom.app/studio/internal/http/dto"
	"launchloom.app/studio/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	user, pair, err := h.authService.Register(ctx, service.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err, "failed to register")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{User: dto.ToUserResponse(user), TokenPair: *pair})
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	user, pair, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(c, err, "failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{User: dto.ToUserResponse(user), TokenPair: *pair})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	pair, err := h.authService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		respondError(c, err, "failed to refresh token")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{TokenPair: *pair})
}
