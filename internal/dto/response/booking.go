package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type BookingItemResponse struct {
	BookingItemID string  `json:"booking_item_id"`
	MovieID       string  `json:"movie_id"`
	Title         string  `json:"movie_title"`
	Seats         int     `json:"seats_booked"`
	Price         float64 `json:"price"`
}

type BookingResponse struct {
	BookingID   string                `json:"booking_id"`
	BookingDate time.Time             `json:"booking_date"`
	Status      entity.BookingStatus  `json:"status"`
	UserName    string                `json:"user_name"`
	UserEmail   string                `json:"user_email"`
	Items       []BookingItemResponse `json:"items"`
	TotalAmount float64               `json:"total_amount"`
	TotalSeats  int                   `json:"total_seats"`
}

// BookingCreatedResponse is the checkout reply. The storefront redirects on
// the top-level order_id key, so this is not wrapped in the envelope.
type BookingCreatedResponse struct {
	Success     bool             `json:"success"`
	OrderID     string           `json:"order_id"`
	TotalAmount float64          `json:"total_amount"`
	TotalSeats  int              `json:"total_seats"`
	Booking     *BookingResponse `json:"booking"`
}

func BookingCreated(booking *BookingResponse) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		Success:     true,
		OrderID:     booking.BookingID,
		TotalAmount: booking.TotalAmount,
		TotalSeats:  booking.TotalSeats,
		Booking:     booking,
	}
}

// GroupBookingLines folds the flat reporting rows into one record per
// booking, preserving the row order of the input. Bookings without items get
// an empty item list and zero totals.
func GroupBookingLines(lines []*entity.BookingLine) []BookingResponse {
	bookings := []BookingResponse{}
	index := map[string]int{}

	for _, line := range lines {
		key := line.BookingID.String()
		pos, seen := index[key]
		if !seen {
			bookings = append(bookings, BookingResponse{
				BookingID:   key,
				BookingDate: line.BookingDate,
				Status:      line.Status,
				UserName:    line.UserName,
				UserEmail:   line.UserEmail,
				Items:       []BookingItemResponse{},
			})
			pos = len(bookings) - 1
			index[key] = pos
		}

		if line.ItemID == nil {
			continue
		}

		item := BookingItemResponse{
			BookingItemID: line.ItemID.String(),
			MovieID:       line.MovieID.String(),
			Seats:         *line.Seats,
			Price:         *line.Price,
		}
		if line.MovieTitle != nil {
			item.Title = *line.MovieTitle
		}

		bookings[pos].Items = append(bookings[pos].Items, item)
		bookings[pos].TotalSeats += item.Seats
		bookings[pos].TotalAmount += float64(item.Seats) * item.Price
	}

	return bookings
}
