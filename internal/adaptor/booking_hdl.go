package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"
)

type BookingHandler struct {
	service    usecase.BookingService
	authorizer usecase.Authorizer
	log        *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, authorizer usecase.Authorizer, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:    service,
		authorizer: authorizer,
		log:        log,
	}
}

// Create handles POST /bookings. A body with items books those; a bare
// {"customer_id": ...} checks out the watchlist.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseRaw(w, http.StatusCreated, response.BookingCreated(booking))
}

// ListAll handles GET /bookings/all, the admin report.
func (h *BookingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	email, password := adminCredentials(r, request.AdminCredentials{})
	if _, err := h.authorizer.AuthorizeAdmin(r.Context(), email, password); err != nil {
		respondServiceError(w, h.log, err, "list bookings")
		return
	}

	bookings, err := h.service.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, bookings)
}

// ListByUser handles GET /bookings/user/{userId}
func (h *BookingHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		respondServiceError(w, h.log, err, "list user bookings")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, bookings)
}

// RecordPayment handles POST /payments
func (h *BookingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.RecordPayment(r.Context(), &req); err != nil {
		respondServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "Payment recorded", nil)
}

// ListPayments handles GET /payments/{bookingId}
func (h *BookingHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListPayments(r.Context(), chi.URLParam(r, "bookingId"))
	if err != nil {
		respondServiceError(w, h.log, err, "list payments")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, payments)
}
