package response

import (
	"movie-booking/internal/data/entity"
)

type GenreResponse struct {
	GenreID string `json:"genre_id"`
	Name    string `json:"name"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		GenreID: genre.ID.String(),
		Name:    genre.Name,
	}
}

func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		out[i] = GenreToResponse(genre)
	}
	return out
}
