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

type GenreService interface {
	Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	List(ctx context.Context) ([]response.GenreResponse, error)
	Update(ctx context.Context, id string, req *request.GenreRequest) (*response.GenreResponse, error)
	Delete(ctx context.Context, id string) error
}

type genreService struct {
	genres repository.GenreRepository
	log    *zap.Logger
}

func NewGenreService(genres repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		genres: genres,
		log:    log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}
	if err := s.genres.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create genre", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) List(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.genres.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.GenresToResponse(genres), nil
}

func (s *genreService) Update(ctx context.Context, id string, req *request.GenreRequest) (*response.GenreResponse, error) {
	genreID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid genre ID format: %s", id)
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre, err := s.genres.FindByID(ctx, genreID)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, apperr.NotFoundf("genre %s", id)
	}

	genre.Name = req.Name
	if err := s.genres.Update(ctx, genre); err != nil {
		return nil, err
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) Delete(ctx context.Context, id string) error {
	genreID, err := uuid.Parse(id)
	if err != nil {
		return apperr.Validationf("invalid genre ID format: %s", id)
	}
	return s.genres.Delete(ctx, genreID)
}
