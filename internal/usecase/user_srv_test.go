package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-booking/internal/dto/request"
	"movie-booking/pkg/apperr"
)

func TestUserCRUD(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	ctx := context.Background()

	created, err := service.User.Create(ctx, &request.CreateUserRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
		IsAdmin:  true,
	})
	require.NoError(t, err)
	assert.True(t, created.IsAdmin)

	got, err := service.User.GetByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Name)

	newName := "Robert"
	updated, err := service.User.Update(ctx, created.UserID, &request.UpdateUserRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.Name)

	all, err := service.User.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, service.User.Delete(ctx, created.UserID))

	_, err = service.User.GetByID(ctx, created.UserID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateUserRejectsTakenEmail(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	ctx := context.Background()

	store.seedUser("Alice", "alice@example.com", "secret123", false)
	bob := store.seedUser("Bob", "bob@example.com", "secret123", false)

	taken := "alice@example.com"
	_, err := service.User.Update(ctx, bob.ID.String(), &request.UpdateUserRequest{Email: &taken})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateUserPasswordChangesLogin(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	ctx := context.Background()

	user := store.seedUser("Alice", "alice@example.com", "oldpass123", false)

	newPass := "newpass456"
	_, err := service.User.Update(ctx, user.ID.String(), &request.UpdateUserRequest{Password: &newPass})
	require.NoError(t, err)

	_, err = service.Auth.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "oldpass123"})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = service.Auth.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "newpass456"})
	assert.NoError(t, err)
}
