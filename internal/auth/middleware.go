package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "photostudio-backend/internal/errors"
	"photostudio-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// callerContextKey is the gin context key holding the verified Caller
const callerContextKey = "auth_caller"

// AuthMiddleware provides bearer token authentication
type AuthMiddleware struct {
	verifier Verifier
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(verifier Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth validates the bearer token and stores the caller on the request
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		caller, err := m.verifier.Verify(tokenString)
		if err != nil {
			logger.FromGinContext(c).WithError(err).Debug("Rejected identity token")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		SetCaller(c, caller)
		c.Next()
	}
}

// RequireStudioOwner rejects team member callers
func (m *AuthMiddleware) RequireStudioOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if !caller.IsStudio() {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrStudioOwnerOnly.Error()})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetCaller stores caller on the gin context, its request context and the log fields
func SetCaller(c *gin.Context, caller Caller) {
	c.Set(callerContextKey, caller)
	c.Set(string(logger.CallerKey), caller.String())

	ctx := WithCaller(c.Request.Context(), caller)
	ctx = context.WithValue(ctx, logger.CallerKey, caller.String())
	c.Request = c.Request.WithContext(ctx)
}

// GetCaller is a helper function to extract the caller from context
func GetCaller(c *gin.Context) (Caller, bool) {
	value, exists := c.Get(callerContextKey)
	if !exists {
		return Caller{}, false
	}
	caller, ok := value.(Caller)
	return caller, ok
}
