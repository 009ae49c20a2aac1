package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/utils"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrFailedToGenerateAPIKey = errors.New("failed to generate api key")
)

// UserService handles user registration.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Register creates a user and returns it along with its plaintext API key.
// Only the key's digest is stored.
func (s *UserService) Register(ctx context.Context, form dto.RegisterUserForm) (*models.User, string, error) {
	if err := apierrors.NewValidationError(form.Validate()); err != nil {
		return nil, "", err
	}

	apiKey, err := utils.GenerateAPIKey()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFailedToGenerateAPIKey, err)
	}

	user := &models.User{
		EmailAddress: form.EmailAddress,
		APIKeyHash:   utils.HashAPIKey(apiKey),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	return user, apiKey, nil
}

// GetUser returns the user with the given id.
func (s *UserService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
