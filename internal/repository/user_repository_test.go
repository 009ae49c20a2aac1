package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/testutil"
	"github.com/yukikurage/todo-api/internal/utils"
)

func TestUserRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{EmailAddress: "a@b.com", APIKeyHash: utils.HashAPIKey("secret")}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	found, err := repo.FindByAPIKeyHash(ctx, utils.HashAPIKey("secret"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "a@b.com", found.EmailAddress)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.APIKeyHash, byID.APIKeyHash)

	_, err = repo.FindByAPIKeyHash(ctx, utils.HashAPIKey("other"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByID(ctx, user.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_SameEmailTwice(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{EmailAddress: "a@b.com", APIKeyHash: utils.HashAPIKey("one")}
	second := &models.User{EmailAddress: "a@b.com", APIKeyHash: utils.HashAPIKey("two")}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUserRepository_DuplicateKeyHash(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{EmailAddress: "a@b.com", APIKeyHash: utils.HashAPIKey("k")}))
	assert.Error(t, repo.Create(ctx, &models.User{EmailAddress: "c@d.com", APIKeyHash: utils.HashAPIKey("k")}))
}
