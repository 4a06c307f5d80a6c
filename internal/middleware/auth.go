// Package middleware contains the authentication gate and the role gate
// that protect every non-public route.
package middleware

import (
	"net/http"

	"helpdesk/backend/internal/auth"
	"helpdesk/backend/internal/config"
	"helpdesk/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the gate stores the authenticated identity.
const ContextUserKey = "user"

// AuthenticatedUser is the identity attached to the request context after a
// token has been verified and its user re-resolved from the store.
type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserResolver is the slice of the store the gate needs.
type UserResolver interface {
	GetUserByID(id uint) (*models.User, error)
}

// Authenticate extracts the session cookie, verifies it and re-resolves the
// user row so a deleted account cannot ride a stale-but-unexpired token. The
// rejection path has no side effects.
func Authenticate(store UserResolver, tokens *auth.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ctx.Cookie(config.SessionCookieName)
		if err != nil || tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Authentication required, please log in",
			})
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Session expired, please log in again",
			})
			return
		}

		user, err := store.GetUserByID(claims.UserID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false, "message": "Internal server error",
			})
			return
		}
		if user == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "User no longer exists",
			})
			return
		}

		ctx.Set(ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.FullName,
			Email: user.Email,
			Role:  user.Role,
		})
		ctx.Next()
	}
}

// RequireRoles rejects any identity whose role is not in the permitted set.
// An empty set permits nobody.
func RequireRoles(roles ...string) gin.HandlerFunc {
	permitted := make(map[string]bool, len(roles))
	for _, r := range roles {
		permitted[r] = true
	}

	return func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Authentication required, please log in",
			})
			return
		}
		if !permitted[user.Role] {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false, "message": "You do not have permission to perform this action",
			})
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the identity attached by Authenticate.
func CurrentUser(ctx *gin.Context) (AuthenticatedUser, bool) {
	v, exists := ctx.Get(ContextUserKey)
	if !exists {
		return AuthenticatedUser{}, false
	}
	user, ok := v.(AuthenticatedUser)
	return user, ok
}
