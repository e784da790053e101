package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewWithAuthor, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, movie_id, rating, comment, review_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.Comment,
		review.ReviewDate,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("movie_id", review.MovieID.String()),
		)
		return fmt.Errorf("create review for movie %s: %w", review.MovieID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewWithAuthor, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.rating, r.comment, r.review_date,
		       COALESCE(u.name, '') AS name
		FROM reviews r
		LEFT JOIN users u ON r.user_id = u.id
		WHERE r.movie_id = $1
		ORDER BY r.review_date DESC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find reviews by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.ReviewWithAuthor
	for rows.Next() {
		var review entity.ReviewWithAuthor
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.Comment,
			&review.ReviewDate,
			&review.UserName,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}
