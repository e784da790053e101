package response

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-booking/internal/data/entity"
)

func line(bookingID uuid.UUID, date time.Time, title string, seats int, price float64) *entity.BookingLine {
	itemID := uuid.New()
	movieID := uuid.New()
	return &entity.BookingLine{
		BookingID:   bookingID,
		BookingDate: date,
		Status:      entity.BookingStatusConfirmed,
		UserName:    "Alice",
		UserEmail:   "alice@example.com",
		ItemID:      &itemID,
		MovieID:     &movieID,
		MovieTitle:  &title,
		Seats:       &seats,
		Price:       &price,
	}
}

func TestGroupBookingLines(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	now := time.Now()

	grouped := GroupBookingLines([]*entity.BookingLine{
		line(first, now, "First", 2, 100.00),
		line(first, now, "Second", 1, 50.00),
		line(second, now.Add(-time.Hour), "First", 3, 100.00),
	})

	require.Len(t, grouped, 2)

	assert.Equal(t, first.String(), grouped[0].BookingID)
	assert.Len(t, grouped[0].Items, 2)
	assert.Equal(t, 3, grouped[0].TotalSeats)
	assert.Equal(t, 250.00, grouped[0].TotalAmount)
	assert.Equal(t, "Alice", grouped[0].UserName)

	assert.Equal(t, second.String(), grouped[1].BookingID)
	assert.Equal(t, 300.00, grouped[1].TotalAmount)
}

func TestGroupBookingLinesWithoutItems(t *testing.T) {
	bookingID := uuid.New()
	grouped := GroupBookingLines([]*entity.BookingLine{
		{
			BookingID:   bookingID,
			BookingDate: time.Now(),
			Status:      entity.BookingStatusConfirmed,
			UserName:    "Alice",
		},
	})

	require.Len(t, grouped, 1)
	assert.NotNil(t, grouped[0].Items)
	assert.Empty(t, grouped[0].Items)
	assert.Zero(t, grouped[0].TotalAmount)
	assert.Zero(t, grouped[0].TotalSeats)
}

func TestGroupBookingLinesEmpty(t *testing.T) {
	grouped := GroupBookingLines(nil)
	assert.NotNil(t, grouped)
	assert.Empty(t, grouped)
}
