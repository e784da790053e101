package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type MovieResponse struct {
	MovieID        string    `json:"movie_id"`
	GenreID        string    `json:"genre_id"`
	Title          string    `json:"title"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"available_seats"`
	Description    string    `json:"description"`
	Duration       int       `json:"duration"`
	Showtime       time.Time `json:"showtime"`
	Genre          string    `json:"genre"`
}

func MovieToResponse(movie *entity.MovieWithGenre) MovieResponse {
	return MovieResponse{
		MovieID:        movie.ID.String(),
		GenreID:        movie.GenreID.String(),
		Title:          movie.Title,
		Price:          movie.Price,
		AvailableSeats: movie.AvailableSeats,
		Description:    movie.Description,
		Duration:       movie.Duration,
		Showtime:       movie.Showtime,
		Genre:          movie.GenreName,
	}
}

func MoviesToResponse(movies []*entity.MovieWithGenre) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
