package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type PaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	BookingID   string    `json:"booking_id"`
	PaymentDate time.Time `json:"payment_date"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
}

func PaymentsToResponse(payments []*entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		out[i] = PaymentResponse{
			PaymentID:   payment.ID.String(),
			BookingID:   payment.BookingID.String(),
			PaymentDate: payment.PaymentDate,
			Amount:      payment.Amount,
			Method:      payment.Method,
			Status:      payment.Status,
		}
	}
	return out
}
