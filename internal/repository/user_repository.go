package repository

import (
	"context"
	"fmt"

	"github.com/yukikurage/todo-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByAPIKeyHash finds a user by the digest of their API key
func (r *GormUserRepository) FindByAPIKeyHash(ctx context.Context, hash string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("api_key_hash = ?", hash).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
