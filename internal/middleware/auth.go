package middleware

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/constants"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/services"
)

// RequireAPIKey resolves the X-Api-Key header to a user before the handler runs
func RequireAPIKey(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := auth.Authenticate(c.Request.Context(), c.Request.Header)
		switch {
		case errors.Is(err, services.ErrMissingAPIKey):
			apierrors.MissingAPIKey(c)
			return
		case errors.Is(err, services.ErrInvalidAPIKey):
			apierrors.InvalidAPIKey(c)
			return
		case err != nil:
			Logger(c).Error("authentication failed", slog.Any("error", err))
			apierrors.InternalError(c, "")
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	v, ok := userID.(uint64)
	return v, ok
}
