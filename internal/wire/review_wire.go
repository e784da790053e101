package wire

import (
	"github.com/go-chi/chi/v5"

	"movie-booking/internal/adaptor"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Post("/reviews", reviewHandler.Add)
	r.Get("/reviews/{movieId}", reviewHandler.ListByMovie)
}
