package wire

import (
	"github.com/go-chi/chi/v5"

	"movie-booking/internal/adaptor"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	r.Route("/genres", func(r chi.Router) {
		r.Get("/", genreHandler.List)
		r.Post("/", genreHandler.Create)
		r.Put("/{id}", genreHandler.Update)
		r.Delete("/{id}", genreHandler.Delete)
	})
}
