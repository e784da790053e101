package usecase

import (
	"context"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/apperr"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// Authorizer is the admin credential gate. Handlers never compare secrets
// themselves; they hand the per-request credentials to this capability.
type Authorizer interface {
	// AuthorizeAdmin returns the admin user for valid admin credentials,
	// apperr.ErrUnauthorized when credentials are missing or wrong, and
	// apperr.ErrForbidden when they belong to a non-admin.
	AuthorizeAdmin(ctx context.Context, email, password string) (*entity.User, error)
}

type credentialAuthorizer struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewCredentialAuthorizer(users repository.UserRepository, log *zap.Logger) Authorizer {
	return &credentialAuthorizer{
		users: users,
		log:   log.With(zap.String("component", "authorizer")),
	}
}

func (a *credentialAuthorizer) AuthorizeAdmin(ctx context.Context, email, password string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, apperr.ErrUnauthorized
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error("Admin check failed", zap.Error(err), zap.String("email", email))
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, apperr.ErrUnauthorized
	}

	if !user.IsAdmin {
		a.log.Warn("Non-admin access attempt", zap.String("email", email))
		return nil, apperr.ErrForbidden
	}

	return user, nil
}

// NullAuthorizer waves every request through. Tests use it to exercise
// handlers without seeding credentials.
type NullAuthorizer struct {
	User *entity.User
}

func (a *NullAuthorizer) AuthorizeAdmin(ctx context.Context, email, password string) (*entity.User, error) {
	if a.User != nil {
		return a.User, nil
	}
	return &entity.User{IsAdmin: true}, nil
}
