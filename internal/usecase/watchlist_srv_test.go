package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-booking/internal/dto/request"
	"movie-booking/pkg/apperr"
)

func TestAddToWatchlist(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)

	user := store.seedUser("Alice", "alice@example.com", "secret123", false)
	movie := store.seedMovie("First", 120.00, 10)

	items, err := service.Watchlist.Add(context.Background(), &request.AddWatchlistRequest{
		UserID:  user.ID.String(),
		MovieID: movie.ID.String(),
		Seats:   2,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "First", items[0].Name)
	assert.Equal(t, 120.00, items[0].Price)

	// Adding the watchlist never reserves seats.
	assert.Equal(t, 10, store.availableSeats(movie.ID))
}

func TestAddToWatchlistMergesRepeatAdds(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)

	user := store.seedUser("Alice", "alice@example.com", "secret123", false)
	movie := store.seedMovie("First", 120.00, 10)

	_, err := service.Watchlist.Add(context.Background(), &request.AddWatchlistRequest{
		UserID:  user.ID.String(),
		MovieID: movie.ID.String(),
		Seats:   2,
	})
	require.NoError(t, err)

	items, err := service.Watchlist.Add(context.Background(), &request.AddWatchlistRequest{
		UserID:  user.ID.String(),
		MovieID: movie.ID.String(),
		Seats:   3,
	})
	require.NoError(t, err)

	// One entry with the merged count, not two entries.
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToWatchlistRejectsMergedOversell(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)

	user := store.seedUser("Alice", "alice@example.com", "secret123", false)
	movie := store.seedMovie("Scarce", 120.00, 4)

	_, err := service.Watchlist.Add(context.Background(), &request.AddWatchlistRequest{
		UserID:  user.ID.String(),
		MovieID: movie.ID.String(),
		Seats:   3,
	})
	require.NoError(t, err)

	_, err = service.Watchlist.Add(context.Background(), &request.AddWatchlistRequest{
		UserID:  user.ID.String(),
		MovieID: movie.ID.String(),
		Seats:   2,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsInventoryExceeded(err))
	assert.Contains(t, err.Error(), "only 4 seats are available")

	// The original entry is untouched.
	items, err := service.Watchlist.List(context.Background(), user.ID.String())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddToWatchlistDefaultsToOneSeat(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)

	user := store.seedUser("Alice", "alice@example.com", "secret123", false)
	movie := store.seedMovie("First", 120.00, 10)

	items, err := service.Watchlist.Add(context.Background(), &request.AddWatchlistRequest{
		CustomerID: user.ID.String(),
		ProductID:  movie.ID.String(),
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddToWatchlistValidation(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	user := store.seedUser("Alice", "alice@example.com", "secret123", false)
	movie := store.seedMovie("First", 120.00, 10)

	cases := []struct {
		name string
		req  request.AddWatchlistRequest
	}{
		{"missing ids", request.AddWatchlistRequest{Seats: 1}},
		{"bad user id", request.AddWatchlistRequest{UserID: "nope", MovieID: movie.ID.String(), Seats: 1}},
		{"bad movie id", request.AddWatchlistRequest{UserID: user.ID.String(), MovieID: "nope", Seats: 1}},
		{"negative seats", request.AddWatchlistRequest{UserID: user.ID.String(), MovieID: movie.ID.String(), Seats: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Watchlist.Add(context.Background(), &tc.req)
			assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestAddToWatchlistUnknownMovie(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	user := store.seedUser("Alice", "alice@example.com", "secret123", false)

	_, err := service.Watchlist.Add(context.Background(), &request.AddWatchlistRequest{
		UserID:  user.ID.String(),
		MovieID: uuid.NewString(),
		Seats:   1,
	})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRemoveFromWatchlistIsIdempotent(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)

	user := store.seedUser("Alice", "alice@example.com", "secret123", false)
	movie := store.seedMovie("First", 120.00, 10)

	items, err := service.Watchlist.Add(context.Background(), &request.AddWatchlistRequest{
		UserID:  user.ID.String(),
		MovieID: movie.ID.String(),
		Seats:   1,
	})
	require.NoError(t, err)

	require.NoError(t, service.Watchlist.Remove(context.Background(), items[0].CartID))
	assert.Equal(t, 0, store.watchlistSize(user.ID))

	// Removing again still succeeds.
	require.NoError(t, service.Watchlist.Remove(context.Background(), items[0].CartID))
	require.NoError(t, service.Watchlist.Remove(context.Background(), uuid.NewString()))
}
