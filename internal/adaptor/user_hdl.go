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

type UserHandler struct {
	service    usecase.UserService
	authorizer usecase.Authorizer
	log        *zap.Logger
}

func NewUserHandler(service usecase.UserService, authorizer usecase.Authorizer, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service:    service,
		authorizer: authorizer,
		log:        log,
	}
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	email, password := adminCredentials(r, request.AdminCredentials{})
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "list users")
		return
	}

	users, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, users)
}

// Get handles GET /users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	email, password := adminCredentials(r, request.AdminCredentials{})
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "get user")
		return
	}

	user, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved", user)
}

// Create handles POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	email, password := adminCredentials(r, req.AdminCredentials)
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "create user")
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created", user)
}

// Update handles PUT /users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	email, password := adminCredentials(r, req.AdminCredentials)
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "update user")
		return
	}

	user, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated", user)
}

// Delete handles DELETE /users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email, password := adminCredentials(r, request.AdminCredentials{})
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "delete user")
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted", nil)
}
