package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/security"
	"github.com/raulbellosom/travel-sub004/pkg/config"
)

// LoginRequest is the admin dashboard login payload.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthHandlers contains the authentication HTTP handlers.
type AuthHandlers struct {
	logger *logging.ChanneledLogger
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(logger *logging.ChanneledLogger) *AuthHandlers {
	return &AuthHandlers{logger: logger}
}

// Login checks the admin password and issues a session token.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if config.AdminPasswordHash == "" || config.JWTSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "authentication is not configured"})
		return
	}

	if !security.VerifyPassword(config.AdminPasswordHash, req.Password) {
		h.logger.Auth().Warn("Failed login attempt", "ip", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := security.GenerateSessionToken("admin", config.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	h.logger.Auth().Info("Admin login", "ip", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"token": token})
}
