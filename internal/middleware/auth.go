package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studybuddy-dev/studybuddy/internal/auth"
	"github.com/studybuddy-dev/studybuddy/internal/store"
	"github.com/studybuddy-dev/studybuddy/internal/types"
)

type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Auth verifies the Bearer token, loads the user and stashes an
// AuthenticatedUser in the gin context.
func Auth(users store.UserStore, tokens *auth.Tokens) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			abortUnauthorized(ctx, "Authorization token is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(ctx, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := tokens.Verify(parts[1])

		if err != nil {
			abortUnauthorized(ctx, "Invalid or expired token")
			return
		}

		user, err := users.UserByID(ctx.Request.Context(), claims.UserID)

		if err != nil {
			abortUnauthorized(ctx, "User not found")
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
		ctx.Next()
	}
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}

func CurrentUser(ctx *gin.Context) (AuthenticatedUser, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return AuthenticatedUser{}, fmt.Errorf("user not authenticated")
	}

	user, ok := value.(AuthenticatedUser)

	if !ok {
		return AuthenticatedUser{}, fmt.Errorf("invalid user type in context")
	}

	return user, nil
}

func CurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := CurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}
