package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"
)

type AuthHandler struct {
	auth  usecase.AuthService
	users usecase.UserService
	log   *zap.Logger
}

func NewAuthHandler(auth usecase.AuthService, users usecase.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:  auth,
		users: users,
		log:   log,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, resp)
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.users.Signup(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "signup")
		return
	}

	utils.ResponseCreated(w, "Registration successful", resp)
}
