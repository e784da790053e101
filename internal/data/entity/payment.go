package entity

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID          uuid.UUID `db:"id"`
	BookingID   uuid.UUID `db:"booking_id"`
	PaymentDate time.Time `db:"payment_date"`
	Amount      float64   `db:"amount"`
	Method      string    `db:"method"`
	Status      string    `db:"status"`
}
