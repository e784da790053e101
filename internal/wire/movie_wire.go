package wire

import (
	"github.com/go-chi/chi/v5"

	"movie-booking/internal/adaptor"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// Catalog reads are public; mutations carry admin credentials in the
	// request itself.
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.List)
		r.Post("/", movieHandler.Create)
		r.Post("/purge", movieHandler.Purge)
		r.Get("/{id}", movieHandler.Get)
		r.Put("/{id}", movieHandler.Update)
		r.Delete("/{id}", movieHandler.Delete)
	})
}
