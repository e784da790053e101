package wire

import (
	"github.com/go-chi/chi/v5"

	"movie-booking/internal/adaptor"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Post("/bookings", bookingHandler.Create)
	r.Get("/bookings/all", bookingHandler.ListAll)
	r.Get("/bookings/user/{userId}", bookingHandler.ListByUser)
	r.Post("/payments", bookingHandler.RecordPayment)
	r.Get("/payments/{bookingId}", bookingHandler.ListPayments)
}
