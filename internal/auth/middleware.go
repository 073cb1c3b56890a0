package auth

import (
	"net/http"
	"strings"

	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware
const (
	ContextPrincipalID = "principal_id"
	ContextEmail       = "email"
	ContextClaims      = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and records the principal on the request
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.claimsFromHeader(c)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("rejected request without valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   apperrors.KindAuthenticationRequired.Message(),
				"kind":    apperrors.KindAuthenticationRequired,
			})
			return
		}

		setPrincipal(c, claims)
		c.Next()
	}
}

// OptionalAuth records the principal when a valid token is present and continues either way
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := m.claimsFromHeader(c); err == nil {
			setPrincipal(c, claims)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) claimsFromHeader(c *gin.Context) (*AuthClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, apperrors.NewAuthenticationError("authorization header is required")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, apperrors.NewAuthenticationError("invalid authorization header format")
	}

	return m.service.ValidateJWT(tokenString)
}

func setPrincipal(c *gin.Context, claims *AuthClaims) {
	c.Set(ContextPrincipalID, claims.PrincipalID())
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextClaims, claims)
	c.Request = c.Request.WithContext(logger.ContextWithPrincipal(c.Request.Context(), claims.PrincipalID()))
}

// GetPrincipalID is a helper function to extract the principal id from context
func GetPrincipalID(c *gin.Context) (string, bool) {
	principal, exists := c.Get(ContextPrincipalID)
	if !exists {
		return "", false
	}

	id, ok := principal.(string)
	return id, ok && id != ""
}

// GetEmail is a helper function to extract the principal email from context
func GetEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextEmail)
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
