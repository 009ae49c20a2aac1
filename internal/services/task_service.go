package services

import (
	"context"
	"errors"

	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/utils"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// ListTasks returns one page of the user's tasks.
func (s *TaskService) ListTasks(ctx context.Context, userID uint64, page utils.PaginationParams) (dto.PagedResult[dto.TaskSummary], error) {
	tasks, total, err := s.taskRepo.List(ctx, userID, page)
	if err != nil {
		return dto.PagedResult[dto.TaskSummary]{}, err
	}
	return dto.ToTaskPage(tasks, page.Page, page.Limit, total), nil
}

// GetTask returns a task owned by the user.
func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, notFoundAs(err, ErrTaskNotFound)
	}
	return task, nil
}

// CreateTask validates the form and inserts an incomplete task.
func (s *TaskService) CreateTask(ctx context.Context, userID uint64, form dto.CreateTaskForm) (*models.Task, error) {
	if err := apierrors.NewValidationError(form.Validate()); err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      userID,
		Title:       form.Title,
		Description: form.Description,
		Completed:   false,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask validates the form and overwrites the task's fields.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint64, form dto.UpdateTaskForm) error {
	if err := apierrors.NewValidationError(form.Validate()); err != nil {
		return err
	}

	task := &models.Task{
		ID:          taskID,
		Title:       form.Title,
		Description: form.Description,
		Completed:   form.Completed,
	}
	return notFoundAs(s.taskRepo.Update(ctx, userID, task), ErrTaskNotFound)
}

// DeleteTask removes a task owned by the user.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	return notFoundAs(s.taskRepo.Delete(ctx, userID, taskID), ErrTaskNotFound)
}

func notFoundAs(err, target error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return target
	}
	return err
}
