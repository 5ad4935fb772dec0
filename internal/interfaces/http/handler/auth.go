package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muebleria/backend/internal/infrastructure/auth"
	"github.com/muebleria/backend/internal/infrastructure/config"
)

// AuthHandler issues bearer tokens for the configured operator account
type AuthHandler struct {
	BaseHandler
	jwtService *auth.JWTService
	authConfig config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(jwtService *auth.JWTService, authConfig config.AuthConfig) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		authConfig: authConfig,
	}
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials against the configured operator account
// and returns a signed bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if req.Username != h.authConfig.Username ||
		!auth.VerifyPassword(h.authConfig.PasswordHash, req.Password) {
		h.Unauthorized(c, "Invalid username or password")
		return
	}

	token, err := h.jwtService.Generate(req.Username)
	if err != nil {
		h.InternalError(c, "Failed to issue token")
		return
	}

	h.Success(c, token)
}
