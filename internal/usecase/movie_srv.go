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
	"movie-booking/pkg/cache"
	"movie-booking/pkg/utils"
)

// defaultKeepTitles is what the catalog purge preserves. It mirrors the
// seeded catalog in migrations/schema.sql.
var defaultKeepTitles = []string{
	"Fast & Furious X",
	"Mission Impossible 8",
	"Laugh Out Loud",
	"The Funny Bone",
	"The Last Dance",
	"Broken Wings",
}

var showtimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

type MovieService interface {
	Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	GetByID(ctx context.Context, id string) (*response.MovieResponse, error)
	List(ctx context.Context, genreID string) ([]response.MovieResponse, error)
	Update(ctx context.Context, id string, req *request.MovieRequest) (*response.MovieResponse, error)
	Delete(ctx context.Context, id string) error
	Purge(ctx context.Context) error
}

type movieService struct {
	movies repository.MovieRepository
	cache  *cache.Cache
	log    *zap.Logger
}

func NewMovieService(movies repository.MovieRepository, catalogCache *cache.Cache, log *zap.Logger) MovieService {
	return &movieService{
		movies: movies,
		cache:  catalogCache,
		log:    log.With(zap.String("service", "movie")),
	}
}

func parseShowtime(value string) (time.Time, error) {
	for _, layout := range showtimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validationf("invalid showtime format: %s", value)
}

func (s *movieService) Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genreID, err := uuid.Parse(req.GenreID)
	if err != nil {
		return nil, apperr.Validationf("invalid genre ID format: %s", req.GenreID)
	}
	showtime, err := parseShowtime(req.Showtime)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		GenreID:        genreID,
		Title:          req.Title,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
		Description:    req.Description,
		Duration:       req.Duration,
		Showtime:       showtime,
	}
	if err := s.movies.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, err
	}

	s.cache.Invalidate(ctx, "movies:*")
	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Int("available_seats", movie.AvailableSeats),
	)

	return s.GetByID(ctx, movie.ID.String())
}

func (s *movieService) GetByID(ctx context.Context, id string) (*response.MovieResponse, error) {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid movie ID format: %s", id)
	}

	movie, err := s.movies.FindWithGenre(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFoundf("movie %s", id)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) List(ctx context.Context, genreID string) ([]response.MovieResponse, error) {
	var filter *uuid.UUID
	cacheKey := "movies:all"
	if genreID != "" {
		parsed, err := uuid.Parse(genreID)
		if err != nil {
			return nil, apperr.Validationf("invalid genre ID format: %s", genreID)
		}
		filter = &parsed
		cacheKey = "movies:genre:" + parsed.String()
	}

	var cached []response.MovieResponse
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	movies, err := s.movies.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := response.MoviesToResponse(movies)
	s.cache.Set(ctx, cacheKey, resp)
	return resp, nil
}

func (s *movieService) Update(ctx context.Context, id string, req *request.MovieRequest) (*response.MovieResponse, error) {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid movie ID format: %s", id)
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genreID, err := uuid.Parse(req.GenreID)
	if err != nil {
		return nil, apperr.Validationf("invalid genre ID format: %s", req.GenreID)
	}
	showtime, err := parseShowtime(req.Showtime)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFoundf("movie %s", id)
	}

	movie.GenreID = genreID
	movie.Title = req.Title
	movie.Price = req.Price
	movie.AvailableSeats = req.AvailableSeats
	movie.Description = req.Description
	movie.Duration = req.Duration
	movie.Showtime = showtime
	movie.UpdatedAt = time.Now()

	if err := s.movies.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", id))
		return nil, err
	}

	s.cache.Invalidate(ctx, "movies:*")
	return s.GetByID(ctx, id)
}

func (s *movieService) Delete(ctx context.Context, id string) error {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return apperr.Validationf("invalid movie ID format: %s", id)
	}

	if err := s.movies.Delete(ctx, movieID); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, "movies:*")
	s.log.Info("Movie deleted", zap.String("movie_id", id))
	return nil
}

func (s *movieService) Purge(ctx context.Context) error {
	if err := s.movies.PurgeExcept(ctx, defaultKeepTitles); err != nil {
		s.log.Error("Catalog purge failed", zap.Error(err))
		return err
	}

	s.cache.Invalidate(ctx, "movies:*")
	s.log.Info("Catalog purged", zap.Strings("kept_titles", defaultKeepTitles))
	return nil
}
