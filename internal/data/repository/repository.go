package repository

import (
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Genre     GenreRepository
	Movie     MovieRepository
	Watchlist WatchlistRepository
	Booking   BookingRepository
	Payment   PaymentRepository
	Review    ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Genre:     NewGenreRepository(db, log),
		Movie:     NewMovieRepository(db, log),
		Watchlist: NewWatchlistRepository(db, log),
		Booking:   NewBookingRepository(db, log),
		Payment:   NewPaymentRepository(db, log),
		Review:    NewReviewRepository(db, log),
	}
}
