package wire

import (
	"github.com/go-chi/chi/v5"

	"movie-booking/internal/adaptor"
)

func wireWatchlist(r chi.Router, watchlistHandler *adaptor.WatchlistHandler) {
	r.Route("/watchlist", func(r chi.Router) {
		r.Post("/", watchlistHandler.Add)
		r.Get("/{userId}", watchlistHandler.List)
		r.Delete("/{watchlistId}", watchlistHandler.Remove)
	})
}
