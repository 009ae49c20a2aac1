package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/utils"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	task.Completed = false
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// FindByID finds a task by ID within the owner's tasks
func (r *GormTaskRepository) FindByID(ctx context.Context, userID, id uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

// List retrieves one page of tasks and the owner-scoped total
func (r *GormTaskRepository) List(ctx context.Context, userID uint64, page utils.PaginationParams) ([]models.Task, int64, error) {
	db := r.db.WithContext(ctx)

	tasks := []models.Task{}
	if err := db.Scopes(database.OwnedBy(userID), database.Paginate(page)).
		Order("id").
		Find(&tasks).Error; err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}

	var total int64
	if err := db.Model(&models.Task{}).
		Scopes(database.OwnedBy(userID)).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	return tasks, total, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(ctx context.Context, userID uint64, task *models.Task) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":         task.Title,
			"description":   task.Description,
			"completed":     task.Completed,
			"date_modified": now,
		})
	if result.Error != nil {
		return fmt.Errorf("update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	task.UserID = userID
	task.DateModified = &now
	return nil
}

// Delete deletes a task
func (r *GormTaskRepository) Delete(ctx context.Context, userID, id uint64) error {
	result := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		Delete(&models.Task{})
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
