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

func TestAddReview(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)

	user := store.seedUser("Alice", "alice@example.com", "secret123", false)
	movie := store.seedMovie("First", 100.00, 10)

	review, err := service.Review.Add(context.Background(), &request.AddReviewRequest{
		CustomerID: user.ID.String(),
		ProductID:  movie.ID.String(),
		Rating:     5,
		Comment:    "Great showing",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", review.Name)
	assert.Equal(t, 5, review.Rating)

	reviews, err := service.Review.ListByMovie(context.Background(), movie.ID.String())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Great showing", reviews[0].Comment)
}

func TestAddReviewRejectsOutOfRangeRating(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	user := store.seedUser("Alice", "alice@example.com", "secret123", false)
	movie := store.seedMovie("First", 100.00, 10)

	for _, rating := range []int{0, 6, -1} {
		_, err := service.Review.Add(context.Background(), &request.AddReviewRequest{
			UserID:  user.ID.String(),
			MovieID: movie.ID.String(),
			Rating:  rating,
		})
		assert.True(t, apperr.IsValidation(err), "rating %d should be rejected", rating)
	}
}

func TestAddReviewUnknownMovie(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	user := store.seedUser("Alice", "alice@example.com", "secret123", false)

	_, err := service.Review.Add(context.Background(), &request.AddReviewRequest{
		UserID:  user.ID.String(),
		MovieID: uuid.NewString(),
		Rating:  4,
	})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
