package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type ReviewResponse struct {
	ReviewID   string    `json:"review_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"review_date"`
	Name       string    `json:"name"`
}

func ReviewsToResponse(reviews []*entity.ReviewWithAuthor) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewResponse{
			ReviewID:   review.ID.String(),
			Rating:     review.Rating,
			Comment:    review.Comment,
			ReviewDate: review.ReviewDate,
			Name:       review.UserName,
		}
	}
	return out
}
