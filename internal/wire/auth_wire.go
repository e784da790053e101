package wire

import (
	"github.com/go-chi/chi/v5"

	"movie-booking/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/auth/login", authHandler.Login)
	r.Post("/signup", authHandler.Signup)
}
