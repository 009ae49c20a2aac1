package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/services"
)

// respondError converts a service error into an HTTP response. Unexpected
// errors are logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var verr *apierrors.ValidationError
	switch {
	case errors.As(err, &verr):
		apierrors.ValidationFailed(c, verr.Errors)
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		middleware.Logger(c).Error("request failed",
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
		)
		apierrors.InternalError(c, "")
	}
}

func currentUserID(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
	}
	return userID, ok
}

func parseTaskID(c *gin.Context) (uint64, bool) {
	// Task ids are bound as signed 64-bit SQL parameters.
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil || taskID == 0 {
		apierrors.BadRequest(c, "Invalid task ID")
		return 0, false
	}
	return taskID, true
}
