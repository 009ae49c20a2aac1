package server

import (
	"log/slog"

	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/services"
	"gorm.io/gorm"
)

// AppState holds the services shared by every request. It is built once at
// startup and never mutated afterwards.
type AppState struct {
	Tasks *services.TaskService
	Users *services.UserService
	Auth  *services.AuthService
	Log   *slog.Logger
}

// NewAppState wires repositories and services around db.
func NewAppState(db *gorm.DB, log *slog.Logger) *AppState {
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return &AppState{
		Tasks: services.NewTaskService(taskRepo),
		Users: services.NewUserService(userRepo),
		Auth:  services.NewAuthService(userRepo),
		Log:   log,
	}
}
