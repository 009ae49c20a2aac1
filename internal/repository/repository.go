package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/utils"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the owner-scoped lookup.
var ErrNotFound = errors.New("repository: record not found")

// TaskRepository defines the interface for task data access.
// Every method is scoped to the owning user.
type TaskRepository interface {
	// Create inserts a new task and fills in its generated ID
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task owned by userID
	FindByID(ctx context.Context, userID, id uint64) (*models.Task, error)

	// List retrieves one page of the user's tasks ordered by ID, together
	// with the total number of tasks the user owns
	List(ctx context.Context, userID uint64, page utils.PaginationParams) ([]models.Task, int64, error)

	// Update overwrites the mutable fields of a task owned by userID
	Update(ctx context.Context, userID uint64, task *models.Task) error

	// Delete hard deletes a task owned by userID
	Delete(ctx context.Context, userID, id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByAPIKeyHash finds the user holding the key with the given digest
	FindByAPIKeyHash(ctx context.Context, hash string) (*models.User, error)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
