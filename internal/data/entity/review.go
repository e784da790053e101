package entity

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	MovieID    uuid.UUID `db:"movie_id"`
	Rating     int       `db:"rating"` // 1-5
	Comment    string    `db:"comment"`
	ReviewDate time.Time `db:"review_date"`
}

// ReviewWithAuthor joins in the reviewer's display name.
type ReviewWithAuthor struct {
	Review
	UserName string `db:"name"`
}
