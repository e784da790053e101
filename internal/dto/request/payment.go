package request

type PaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required,uuid4"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
}
