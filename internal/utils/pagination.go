package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/constants"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
)

// maxPageIndex keeps page*TaskPageSize within int.
const maxPageIndex = math.MaxInt / constants.TaskPageSize

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// NewPaginationParams returns the window for the given zero-based page index.
func NewPaginationParams(page int) PaginationParams {
	return PaginationParams{
		Page:   page,
		Limit:  constants.TaskPageSize,
		Offset: page * constants.TaskPageSize,
	}
}

// ParsePageIndex parses a raw page query value. An empty value selects the
// first page.
func ParsePageIndex(raw string) (int, error) {
	if raw == "" {
		return constants.MinPageIndex, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < constants.MinPageIndex || page > maxPageIndex {
		return 0, apierrors.NewValidationError([]apierrors.FieldError{{
			Field:   "page",
			Message: "page must be a non-negative integer",
		}})
	}
	return page, nil
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) (PaginationParams, error) {
	page, err := ParsePageIndex(c.Query("page"))
	if err != nil {
		return PaginationParams{}, err
	}
	return NewPaginationParams(page), nil
}
