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

type GenreHandler struct {
	service    usecase.GenreService
	authorizer usecase.Authorizer
	log        *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, authorizer usecase.Authorizer, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service:    service,
		authorizer: authorizer,
		log:        log,
	}
}

// List handles GET /genres
func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list genres")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, genres)
}

// Create handles POST /genres
func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	email, password := adminCredentials(r, req.AdminCredentials)
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "create genre")
		return
	}

	genre, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "Genre created", genre)
}

// Update handles PUT /genres/{id}
func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	email, password := adminCredentials(r, req.AdminCredentials)
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "update genre")
		return
	}

	genre, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update genre")
		return
	}

	utils.ResponseSuccess(w, "Genre updated", genre)
}

// Delete handles DELETE /genres/{id}
func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email, password := adminCredentials(r, request.AdminCredentials{})
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "delete genre")
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.log, err, "delete genre")
		return
	}

	utils.ResponseSuccess(w, "Genre deleted", nil)
}
