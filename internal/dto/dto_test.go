package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-api/internal/models"
)

func TestCreateTaskForm_Validate(t *testing.T) {
	t.Run("empty description", func(t *testing.T) {
		errs := CreateTaskForm{Description: ""}.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "description", errs[0].Field)
		assert.Equal(t, "Description is required", errs[0].Message)
	})

	t.Run("non-empty description", func(t *testing.T) {
		assert.Empty(t, CreateTaskForm{Description: "buy milk"}.Validate())
	})

	t.Run("title optional", func(t *testing.T) {
		assert.Empty(t, CreateTaskForm{Title: "", Description: "x"}.Validate())
	})

	t.Run("title too long", func(t *testing.T) {
		errs := CreateTaskForm{Title: strings.Repeat("a", 256), Description: "x"}.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "title", errs[0].Field)
		assert.Equal(t, "Title must be at most 255 characters", errs[0].Message)
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := CreateTaskForm{Title: strings.Repeat("a", 256)}.Validate()
		assert.Len(t, errs, 2)
	})
}

func TestUpdateTaskForm_Validate(t *testing.T) {
	errs := UpdateTaskForm{Completed: true}.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)

	assert.Empty(t, UpdateTaskForm{Description: "done", Completed: true}.Validate())
}

func TestRegisterUserForm_Validate(t *testing.T) {
	tests := []struct {
		email   string
		wantMsg string
	}{
		{email: "a@b.com"},
		{email: "", wantMsg: "Email address is required"},
		{email: "not-an-email", wantMsg: "Email address must be a valid email address"},
		{email: strings.Repeat("a", 250) + "@b.com", wantMsg: "Email address must be at most 255 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			errs := RegisterUserForm{EmailAddress: tt.email}.Validate()
			if tt.wantMsg == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "email_address", errs[0].Field)
			assert.Equal(t, tt.wantMsg, errs[0].Message)
		})
	}
}

func TestToTaskPage(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	modified := created.Add(time.Hour)
	page := ToTaskPage([]models.Task{
		{ID: 1, UserID: 9, Title: "a", Description: "first", DateCreated: created},
		{ID: 2, UserID: 9, Title: "b", Description: "second", Completed: true, DateCreated: created, DateModified: &modified},
	}, 1, 10, 12)

	assert.Equal(t, 1, page.PageIndex)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, int64(12), page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, uint64(2), page.Items[1].ID)
	assert.True(t, page.Items[1].Completed)
	assert.Nil(t, page.Items[0].DateModified)
	require.NotNil(t, page.Items[1].DateModified)
	assert.Equal(t, modified, *page.Items[1].DateModified)
}

func TestToTaskPage_EmptyItemsEncodeAsArray(t *testing.T) {
	body, err := json.Marshal(ToTaskPage(nil, 0, 10, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"page_index":0,"page_size":10,"total_count":0}`, string(body))
}

func TestTaskJSONOmitsOwner(t *testing.T) {
	body, err := json.Marshal(ToTaskDTO(models.Task{ID: 3, UserID: 42, Title: "t", Description: "d"}))
	require.NoError(t, err)
	assert.NotContains(t, string(body), "42")
	assert.Contains(t, string(body), `"date_modified":null`)
}

func TestRegisterUserResponse(t *testing.T) {
	resp := ToRegisterUserResponse(models.User{ID: 5, EmailAddress: "a@b.com", APIKeyHash: "hash"}, "plain")
	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5,"email_address":"a@b.com","api_key":"plain"}`, string(body))
}
