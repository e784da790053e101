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

type UserService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetByID(ctx context.Context, id string) (*response.UserResponse, error)
	List(ctx context.Context) ([]response.UserResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	return s.register(ctx, req.Name, req.Email, req.Password, false)
}

func (s *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	return s.register(ctx, req.Name, req.Email, req.Password, req.IsAdmin)
}

func (s *userService) register(ctx context.Context, name, email, password string, isAdmin bool) (*response.UserResponse, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validationf("email %s is already registered", email)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.Bool("is_admin", user.IsAdmin),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*response.UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format: %s", id)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("user %s", id)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.UsersToResponse(users), nil
}

func (s *userService) Update(ctx context.Context, id string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format: %s", id)
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("user %s", id)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.users.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Validationf("email %s is already registered", *req.Email)
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", id))
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return apperr.Validationf("invalid user ID format: %s", id)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	s.log.Info("User deleted", zap.String("user_id", id))
	return nil
}
