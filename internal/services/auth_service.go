package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/utils"
)

var (
	ErrMissingAPIKey = utils.ErrMissingAPIKey
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// AuthService resolves API keys to user ids.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Authenticate returns the id of the user owning the X-Api-Key header.
func (s *AuthService) Authenticate(ctx context.Context, h http.Header) (uint64, error) {
	key, err := utils.APIKeyFromHeader(h)
	if err != nil {
		return 0, err
	}

	user, err := s.userRepo.FindByAPIKeyHash(ctx, utils.HashAPIKey(key))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrInvalidAPIKey
		}
		return 0, fmt.Errorf("failed to look up api key: %w", err)
	}

	return user.ID, nil
}
