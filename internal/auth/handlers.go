package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes token helpers over HTTP
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// ValidateToken returns the claims of the bearer token
// @Summary Validate JWT token
// @Description Validate the bearer token and return its claims
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	claims, err := NewAuthMiddleware(h.service).claimsFromHeader(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
