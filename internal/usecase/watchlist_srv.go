package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/apperr"
)

type WatchlistService interface {
	List(ctx context.Context, userID string) ([]response.WatchlistItemResponse, error)

	// Add merges the requested seats into the user's existing entry for the
	// movie, rejecting the add when the merged total exceeds availability.
	Add(ctx context.Context, req *request.AddWatchlistRequest) ([]response.WatchlistItemResponse, error)

	// Remove is idempotent: removing an absent entry succeeds.
	Remove(ctx context.Context, entryID string) error
}

type watchlistService struct {
	watchlist repository.WatchlistRepository
	users     repository.UserRepository
	log       *zap.Logger
}

func NewWatchlistService(repo *repository.Repository, log *zap.Logger) WatchlistService {
	return &watchlistService{
		watchlist: repo.Watchlist,
		users:     repo.User,
		log:       log.With(zap.String("service", "watchlist")),
	}
}

func (s *watchlistService) List(ctx context.Context, userID string) ([]response.WatchlistItemResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format: %s", userID)
	}

	items, err := s.watchlist.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.WatchlistToResponse(items), nil
}

func (s *watchlistService) Add(ctx context.Context, req *request.AddWatchlistRequest) ([]response.WatchlistItemResponse, error) {
	rawUserID, rawMovieID, seats := req.Canonical()
	if rawUserID == "" || rawMovieID == "" {
		return nil, apperr.Validationf("user_id and movie_id are required")
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format: %s", rawUserID)
	}
	movieID, err := uuid.Parse(rawMovieID)
	if err != nil {
		return nil, apperr.Validationf("invalid movie ID format: %s", rawMovieID)
	}
	if seats <= 0 {
		return nil, apperr.Validationf("seat count must be positive, got %d", seats)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("user %s", rawUserID)
	}

	entry, err := s.watchlist.Upsert(ctx, userID, movieID, seats)
	if err != nil {
		return nil, err
	}

	s.log.Info("Watchlist entry upserted",
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID.String()),
		zap.Int("seats_selected", entry.SeatsSelected),
	)

	return s.List(ctx, userID.String())
}

func (s *watchlistService) Remove(ctx context.Context, entryID string) error {
	id, err := uuid.Parse(entryID)
	if err != nil {
		return apperr.Validationf("invalid watchlist ID format: %s", entryID)
	}

	if err := s.watchlist.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Watchlist entry removed", zap.String("watchlist_id", entryID))
	return nil
}
