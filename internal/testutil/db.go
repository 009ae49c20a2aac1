// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns an isolated in-memory SQLite database with the schema applied.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Each connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// CreateUser inserts a user holding apiKey and returns it.
func CreateUser(t testing.TB, db *gorm.DB, email, apiKey string) *models.User {
	t.Helper()

	user := &models.User{
		EmailAddress: email,
		APIKeyHash:   utils.HashAPIKey(apiKey),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// CreateTask inserts a task owned by userID and returns it.
func CreateTask(t testing.TB, db *gorm.DB, userID uint64, title, description string) *models.Task {
	t.Helper()

	task := &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}
