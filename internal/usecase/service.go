package usecase

import (
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/cache"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Movie     MovieService
	Genre     GenreService
	Watchlist WatchlistService
	Booking   BookingService
	Review    ReviewService
}

func NewService(repo *repository.Repository, catalogCache *cache.Cache, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo.User, log),
		User:      NewUserService(repo.User, log),
		Movie:     NewMovieService(repo.Movie, catalogCache, log),
		Genre:     NewGenreService(repo.Genre, log),
		Watchlist: NewWatchlistService(repo, log),
		Booking:   NewBookingService(repo, catalogCache, log),
		Review:    NewReviewService(repo, log),
	}
}
