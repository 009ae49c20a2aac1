package dto

import (
	"time"

	"github.com/yukikurage/todo-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID           uint64     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Completed    bool       `json:"completed"`
	DateCreated  time.Time  `json:"date_created"`
	DateModified *time.Time `json:"date_modified"`
}

// TaskSummary represents a task in list responses
type TaskSummary struct {
	ID           uint64     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Completed    bool       `json:"completed"`
	DateCreated  time.Time  `json:"date_created"`
	DateModified *time.Time `json:"date_modified"`
}

// PagedResult is one page of items together with the total number of
// matching rows.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	PageIndex  int   `json:"page_index"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
}

// CreateTaskForm is the request body of POST /v1/todos
type CreateTaskForm struct {
	Title       string `json:"title" validate:"max=255"`
	Description string `json:"description" validate:"required,max=4000"`
}

// Validate returns one entry per invalid field.
func (f CreateTaskForm) Validate() []FieldError {
	return validateStruct(f)
}

// UpdateTaskForm is the request body of PUT /v1/todos/:id
type UpdateTaskForm struct {
	Title       string `json:"title" validate:"max=255"`
	Description string `json:"description" validate:"required,max=4000"`
	Completed   bool   `json:"completed"`
}

// Validate returns one entry per invalid field.
func (f UpdateTaskForm) Validate() []FieldError {
	return validateStruct(f)
}

// CreateTaskResult is returned after a task has been inserted
type CreateTaskResult struct {
	ID uint64 `json:"id"`
}

// Conversion functions

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Completed:    task.Completed,
		DateCreated:  task.DateCreated,
		DateModified: task.DateModified,
	}
}

// ToTaskSummary converts a Task model to TaskSummary
func ToTaskSummary(task models.Task) TaskSummary {
	return TaskSummary{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Completed:    task.Completed,
		DateCreated:  task.DateCreated,
		DateModified: task.DateModified,
	}
}

// ToTaskPage converts one page of tasks into a PagedResult
func ToTaskPage(tasks []models.Task, pageIndex, pageSize int, totalCount int64) PagedResult[TaskSummary] {
	items := make([]TaskSummary, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskSummary(task)
	}

	return PagedResult[TaskSummary]{
		Items:      items,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}
