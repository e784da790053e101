package request

type AddReviewRequest struct {
	UserID     string `json:"user_id"`
	CustomerID string `json:"customer_id"` // legacy alias for user_id
	MovieID    string `json:"movie_id"`
	ProductID  string `json:"product_id"` // legacy alias for movie_id
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

func (r *AddReviewRequest) Canonical() (string, string) {
	userID := r.UserID
	if userID == "" {
		userID = r.CustomerID
	}
	movieID := r.MovieID
	if movieID == "" {
		movieID = r.ProductID
	}
	return userID, movieID
}
