package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"
)

type MovieHandler struct {
	service    usecase.MovieService
	authorizer usecase.Authorizer
	log        *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, authorizer usecase.Authorizer, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service:    service,
		authorizer: authorizer,
		log:        log,
	}
}

// List handles GET /movies/ and returns a bare array, which is what the
// storefront catalog page consumes.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.List(r.Context(), r.URL.Query().Get("genre_id"))
	if err != nil {
		respondServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, movies)
}

// Get handles GET /movies/{id}
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved", movie)
}

// Create handles POST /movies
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	email, password := adminCredentials(r, req.AdminCredentials)
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "create movie")
		return
	}

	movie, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created", movie)
}

// Update handles PUT /movies/{id}
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	email, password := adminCredentials(r, req.AdminCredentials)
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "update movie")
		return
	}

	movie, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated", movie)
}

// Delete handles DELETE /movies/{id}
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email, password := adminCredentials(r, request.AdminCredentials{})
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "delete movie")
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted", nil)
}

// Purge handles POST /movies/purge
func (h *MovieHandler) Purge(w http.ResponseWriter, r *http.Request) {
	var req request.PurgeMoviesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	email, password := adminCredentials(r, req.AdminCredentials)
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "purge movies")
		return
	}

	if err := h.service.Purge(r.Context()); err != nil {
		respondServiceError(w, h.log, err, "purge movies")
		return
	}

	utils.ResponseSuccess(w, "Catalog purged", nil)
}
