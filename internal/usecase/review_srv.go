package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/apperr"
	"movie-booking/pkg/utils"
)

type ReviewService interface {
	Add(ctx context.Context, req *request.AddReviewRequest) (*response.ReviewResponse, error)
	ListByMovie(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
	users   repository.UserRepository
	movies  repository.MovieRepository
	log     *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		reviews: repo.Review,
		users:   repo.User,
		movies:  repo.Movie,
		log:     log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Add(ctx context.Context, req *request.AddReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rawUserID, rawMovieID := req.Canonical()
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

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("user %s", rawUserID)
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFoundf("movie %s", rawMovieID)
	}

	review := &entity.Review{
		ID:         uuid.New(),
		UserID:     userID,
		MovieID:    movieID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewDate: time.Now(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review", zap.Error(err), zap.String("movie_id", rawMovieID))
		return nil, err
	}

	s.log.Info("Review added",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_id", rawMovieID),
		zap.Int("rating", review.Rating),
	)

	return &response.ReviewResponse{
		ReviewID:   review.ID.String(),
		Rating:     review.Rating,
		Comment:    review.Comment,
		ReviewDate: review.ReviewDate,
		Name:       user.Name,
	}, nil
}

func (s *reviewService) ListByMovie(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperr.Validationf("invalid movie ID format: %s", movieID)
	}

	reviews, err := s.reviews.FindByMovieID(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.ReviewsToResponse(reviews), nil
}
