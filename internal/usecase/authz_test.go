package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movie-booking/pkg/apperr"
)

func TestCredentialAuthorizer(t *testing.T) {
	store := newMemStore()
	admin := store.seedUser("Admin", "admin@moviebooking.com", "admin123", true)
	store.seedUser("Alice", "alice@example.com", "secret123", false)

	authorizer := NewCredentialAuthorizer(store.repos().User, zap.NewNop())
	ctx := context.Background()

	t.Run("admin passes", func(t *testing.T) {
		user, err := authorizer.AuthorizeAdmin(ctx, "admin@moviebooking.com", "admin123")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, user.ID)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := authorizer.AuthorizeAdmin(ctx, "", "")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authorizer.AuthorizeAdmin(ctx, "admin@moviebooking.com", "nope")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := authorizer.AuthorizeAdmin(ctx, "ghost@example.com", "admin123")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("valid non-admin", func(t *testing.T) {
		_, err := authorizer.AuthorizeAdmin(ctx, "alice@example.com", "secret123")
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})
}
