package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/services"
)

// UserHandler serves registration and account endpoints.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates a user and returns its API key. The key is never shown again.
func (h *UserHandler) Register(c *gin.Context) {
	var form dto.RegisterUserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, apiKey, err := h.userService.Register(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegisterUserResponse(*user, apiKey))
}

// GetCurrentUser returns the authenticated user.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
