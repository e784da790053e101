package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/cache"
	"movie-booking/pkg/middleware"
)

type App struct {
	Router *chi.Mux
}

func Wiring(repo *repository.Repository, catalogCache *cache.Cache, logger *zap.Logger) *App {
	service := usecase.NewService(repo, catalogCache, logger)
	authorizer := usecase.NewCredentialAuthorizer(repo.User, logger)
	handler := adaptor.NewHandler(service, authorizer, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User)
	wireMovie(r, handler.Movie)
	wireGenre(r, handler.Genre)
	wireWatchlist(r, handler.Watchlist)
	wireBooking(r, handler.Booking)
	wireReview(r, handler.Review)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
