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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// ListByMovie handles GET /reviews/{movieId}
func (h *ReviewHandler) ListByMovie(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByMovie(r.Context(), chi.URLParam(r, "movieId"))
	if err != nil {
		respondServiceError(w, h.log, err, "list reviews")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, reviews)
}

// Add handles POST /reviews
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.Add(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "add review")
		return
	}

	utils.ResponseCreated(w, "Review added", review)
}
