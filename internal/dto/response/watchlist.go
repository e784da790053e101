package response

import (
	"movie-booking/internal/data/entity"
)

// WatchlistItemResponse keeps the cart_id/quantity/name keys the storefront
// checkout page was written against.
type WatchlistItemResponse struct {
	CartID   string  `json:"cart_id"`
	MovieID  string  `json:"movie_id"`
	Quantity int     `json:"quantity"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

func WatchlistToResponse(items []*entity.WatchlistItem) []WatchlistItemResponse {
	out := make([]WatchlistItemResponse, len(items))
	for i, item := range items {
		out[i] = WatchlistItemResponse{
			CartID:   item.EntryID.String(),
			MovieID:  item.MovieID.String(),
			Quantity: item.SeatsSelected,
			Name:     item.MovieTitle,
			Price:    item.Price,
		}
	}
	return out
}
