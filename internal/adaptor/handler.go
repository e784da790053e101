package adaptor

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/apperr"
	"movie-booking/pkg/utils"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Movie     *MovieHandler
	Genre     *GenreHandler
	Watchlist *WatchlistHandler
	Booking   *BookingHandler
	Review    *ReviewHandler
}

func NewHandler(service *usecase.Service, authorizer usecase.Authorizer, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, service.User, log),
		User:      NewUserHandler(service.User, authorizer, log),
		Movie:     NewMovieHandler(service.Movie, authorizer, log),
		Genre:     NewGenreHandler(service.Genre, authorizer, log),
		Watchlist: NewWatchlistHandler(service.Watchlist, log),
		Booking:   NewBookingHandler(service.Booking, authorizer, log),
		Review:    NewReviewHandler(service.Review, log),
	}
}

// respondServiceError maps service errors onto HTTP statuses. Anything
// outside the known taxonomy is a 500 with a generic body.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, apperr.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Admin credentials required")

	case errors.Is(err, apperr.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Admin privileges required")

	case apperr.IsValidation(err), apperr.IsInventoryExceeded(err):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// adminCredentials pulls the per-request admin credentials from the decoded
// body, falling back to query parameters for verbs without a body.
func adminCredentials(r *http.Request, body request.AdminCredentials) (string, string) {
	email := body.AdminEmail
	if email == "" {
		email = r.URL.Query().Get("admin_email")
	}
	password := body.AdminPassword
	if password == "" {
		password = r.URL.Query().Get("admin_password")
	}
	return email, password
}
