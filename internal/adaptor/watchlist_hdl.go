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

type WatchlistHandler struct {
	service usecase.WatchlistService
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /watchlist/{userId}
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		respondServiceError(w, h.log, err, "list watchlist")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, items)
}

// Add handles POST /watchlist/
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddWatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	items, err := h.service.Add(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "add to watchlist")
		return
	}

	utils.ResponseCreated(w, "Added to watchlist", items)
}

// Remove handles DELETE /watchlist/{watchlistId}
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Remove(r.Context(), chi.URLParam(r, "watchlistId")); err != nil {
		respondServiceError(w, h.log, err, "remove from watchlist")
		return
	}

	utils.ResponseSuccess(w, "Removed from watchlist", nil)
}
