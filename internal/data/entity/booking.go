package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is immutable once created; only status may transition.
type Booking struct {
	ID          uuid.UUID     `db:"id"`
	UserID      uuid.UUID     `db:"user_id"`
	BookingDate time.Time     `db:"booking_date"`
	Status      BookingStatus `db:"status"`
	Items       []BookingItem
}

// BookingItem carries the price snapshot taken at booking time, which is the
// financial record of truth regardless of later catalog edits.
type BookingItem struct {
	ID          uuid.UUID `db:"id"`
	BookingID   uuid.UUID `db:"booking_id"`
	MovieID     uuid.UUID `db:"movie_id"`
	SeatsBooked int       `db:"seats_booked"`
	Price       float64   `db:"price"`
}

// SeatRequest is one requested line of a checkout.
type SeatRequest struct {
	MovieID uuid.UUID
	Seats   int
}

// BookingLine is one flat row of the reporting join
// (bookings x users x booking_items x movies). Item columns are nil for
// bookings without items.
type BookingLine struct {
	BookingID   uuid.UUID
	BookingDate time.Time
	Status      BookingStatus
	UserName    string
	UserEmail   string
	ItemID      *uuid.UUID
	MovieID     *uuid.UUID
	MovieTitle  *string
	Seats       *int
	Price       *float64
}
