package entity

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	Base
	GenreID        uuid.UUID `db:"genre_id"`
	Title          string    `db:"title"`
	Price          float64   `db:"price"`
	AvailableSeats int       `db:"available_seats"`
	Description    string    `db:"description"`
	Duration       int       `db:"duration"` // minutes
	Showtime       time.Time `db:"showtime"`
}

// MovieWithGenre is the catalog listing row with the genre name joined in.
type MovieWithGenre struct {
	Movie
	GenreName string `db:"genre_name"`
}
