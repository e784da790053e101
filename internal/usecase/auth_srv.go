package usecase

import (
	"context"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/apperr"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewAuthService(users repository.UserRepository, log *zap.Logger) AuthService {
	return &authService{
		users: users,
		log:   log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to look up user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperr.ErrUnauthorized
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.Bool("is_admin", user.IsAdmin),
	)

	return response.UserToLoginResponse(user), nil
}
