package request

// AddWatchlistRequest accepts both the current field names and the legacy
// aliases still sent by the storefront. Canonical() collapses them; nothing
// past the handler ever sees an alias.
type AddWatchlistRequest struct {
	UserID     string `json:"user_id"`
	CustomerID string `json:"customer_id"` // legacy alias for user_id
	MovieID    string `json:"movie_id"`
	ProductID  string `json:"product_id"` // legacy alias for movie_id
	Seats      int    `json:"seats_selected"`
	Quantity   int    `json:"quantity"` // legacy alias for seats_selected
}

// Canonical returns (userID, movieID, seats) with aliases collapsed and the
// seat count defaulted to 1 when omitted.
func (r *AddWatchlistRequest) Canonical() (string, string, int) {
	userID := r.UserID
	if userID == "" {
		userID = r.CustomerID
	}
	movieID := r.MovieID
	if movieID == "" {
		movieID = r.ProductID
	}
	seats := r.Seats
	if seats == 0 {
		seats = r.Quantity
	}
	if seats == 0 {
		seats = 1
	}
	return userID, movieID, seats
}
