package request

type MovieRequest struct {
	AdminCredentials
	GenreID        string  `json:"genre_id" validate:"required,uuid4"`
	Title          string  `json:"title" validate:"required,min=1,max=150"`
	Price          float64 `json:"price" validate:"gte=0"`
	AvailableSeats int     `json:"available_seats" validate:"gte=0"`
	Description    string  `json:"description"`
	Duration       int     `json:"duration" validate:"gte=0"`
	Showtime       string  `json:"showtime" validate:"required"`
}

type PurgeMoviesRequest struct {
	AdminCredentials
}
