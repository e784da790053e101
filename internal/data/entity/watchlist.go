package entity

import (
	"time"

	"github.com/google/uuid"
)

// WatchlistEntry holds a user's pending seat selection for one movie.
// At most one entry exists per (user, movie) pair; repeat adds merge into it.
type WatchlistEntry struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	MovieID       uuid.UUID `db:"movie_id"`
	SeatsSelected int       `db:"seats_selected"`
	AddedAt       time.Time `db:"added_at"`
}

// WatchlistItem is the listing row with movie title and price joined in.
type WatchlistItem struct {
	EntryID       uuid.UUID `db:"id"`
	MovieID       uuid.UUID `db:"movie_id"`
	SeatsSelected int       `db:"seats_selected"`
	MovieTitle    string    `db:"title"`
	Price         float64   `db:"price"`
}
