package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"daily-market/internal/models"
)

// EmailKey is the gin context key holding the verified caller email.
const EmailKey = "email"

// TokenVerifier validates a bearer credential and resolves the caller email.
// Satisfied by auth.Verifier.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}

// RoleReader looks up the stored user record for a verified email.
// Satisfied by repository.UserRepository.
type RoleReader interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireAuth checks the Authorization header against the identity provider
// and stashes the verified email in the request context.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		email, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: Invalid token"})
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}

// RequireRole re-reads the caller's user record on every request and rejects
// the request unless the stored role matches. Must run after RequireAuth.
func RequireRole(users RoleReader, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := VerifiedEmail(c)

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil || user.EffectiveRole() != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		c.Next()
	}
}

// VerifiedEmail returns the email set by RequireAuth, or "" when the route is
// not gated.
func VerifiedEmail(c *gin.Context) string {
	email, _ := c.Get(EmailKey)
	s, _ := email.(string)
	return s
}
