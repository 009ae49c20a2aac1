package client

import "time"

// PagedResult is one page of items returned by the list endpoint.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	PageIndex  int   `json:"page_index"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
}

// Task as returned by the API.
type Task struct {
	ID           uint64     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Completed    bool       `json:"completed"`
	DateCreated  time.Time  `json:"date_created"`
	DateModified *time.Time `json:"date_modified"`
}
