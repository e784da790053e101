package request

type BookingItemRequest struct {
	MovieID   string `json:"movie_id"`
	ProductID string `json:"product_id"` // legacy alias for movie_id
	Seats     int    `json:"seats"`
	Quantity  int    `json:"quantity"` // legacy alias for seats
}

func (r *BookingItemRequest) Canonical() (string, int) {
	movieID := r.MovieID
	if movieID == "" {
		movieID = r.ProductID
	}
	seats := r.Seats
	if seats == 0 {
		seats = r.Quantity
	}
	return movieID, seats
}

// CreateBookingRequest books explicit items when given; with no items the
// user's watchlist is checked out instead.
type CreateBookingRequest struct {
	UserID     string               `json:"user_id"`
	CustomerID string               `json:"customer_id"` // legacy alias for user_id
	Items      []BookingItemRequest `json:"items,omitempty"`
}

func (r *CreateBookingRequest) CanonicalUserID() string {
	if r.UserID != "" {
		return r.UserID
	}
	return r.CustomerID
}
