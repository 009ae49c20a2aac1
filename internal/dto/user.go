package dto

import (
	"time"

	"github.com/yukikurage/todo-api/internal/models"
)

// RegisterUserForm is the request body of POST /v1/users/register
type RegisterUserForm struct {
	EmailAddress string `json:"email_address" validate:"required,max=255,email"`
}

// Validate returns one entry per invalid field.
func (f RegisterUserForm) Validate() []FieldError {
	return validateStruct(f)
}

// RegisterUserResponse carries the only copy of the plaintext API key the
// caller will ever receive.
type RegisterUserResponse struct {
	ID           uint64 `json:"id"`
	EmailAddress string `json:"email_address"`
	APIKey       string `json:"api_key"`
}

// ToRegisterUserResponse converts a freshly created user and its key
func ToRegisterUserResponse(user models.User, apiKey string) RegisterUserResponse {
	return RegisterUserResponse{
		ID:           user.ID,
		EmailAddress: user.EmailAddress,
		APIKey:       apiKey,
	}
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID           uint64    `json:"id"`
	EmailAddress string    `json:"email_address"`
	DateCreated  time.Time `json:"date_created"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:           user.ID,
		EmailAddress: user.EmailAddress,
		DateCreated:  user.DateCreated,
	}
}
