package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/apperr"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)

	// FindWithGenre is FindByID with the genre name joined in, for the
	// single-movie responses.
	FindWithGenre(ctx context.Context, id uuid.UUID) (*entity.MovieWithGenre, error)

	FindAll(ctx context.Context, genreID *uuid.UUID) ([]*entity.MovieWithGenre, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error

	// PurgeExcept is the maintenance cascade: it removes every movie whose
	// title is not in keepTitles, together with its booking items, watchlist
	// entries, and reviews, in one transaction.
	PurgeExcept(ctx context.Context, keepTitles []string) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, genre_id, title, price, available_seats, description,
		                    duration, showtime, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.GenreID,
		movie.Title,
		movie.Price,
		movie.AvailableSeats,
		movie.Description,
		movie.Duration,
		movie.Showtime,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, genre_id, title, price, available_seats, description,
		       duration, showtime, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.GenreID,
		&movie.Title,
		&movie.Price,
		&movie.AvailableSeats,
		&movie.Description,
		&movie.Duration,
		&movie.Showtime,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return &movie, nil
}

func (r *movieRepository) FindWithGenre(ctx context.Context, id uuid.UUID) (*entity.MovieWithGenre, error) {
	query := `
		SELECT m.id, m.genre_id, m.title, m.price, m.available_seats, m.description,
		       m.duration, m.showtime, m.created_at, m.updated_at,
		       COALESCE(g.name, '') AS genre_name
		FROM movies m
		LEFT JOIN genres g ON m.genre_id = g.id
		WHERE m.id = $1
	`

	var movie entity.MovieWithGenre
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.GenreID,
		&movie.Title,
		&movie.Price,
		&movie.AvailableSeats,
		&movie.Description,
		&movie.Duration,
		&movie.Showtime,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&movie.GenreName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie with genre",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie with genre %s: %w", id.String(), err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, genreID *uuid.UUID) ([]*entity.MovieWithGenre, error) {
	query := `
		SELECT m.id, m.genre_id, m.title, m.price, m.available_seats, m.description,
		       m.duration, m.showtime, m.created_at, m.updated_at,
		       COALESCE(g.name, '') AS genre_name
		FROM movies m
		LEFT JOIN genres g ON m.genre_id = g.id
	`

	args := []any{}
	if genreID != nil {
		query += ` WHERE m.genre_id = $1`
		args = append(args, *genreID)
	}
	query += ` ORDER BY m.showtime, m.title`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find all movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.MovieWithGenre
	for rows.Next() {
		var movie entity.MovieWithGenre
		err := rows.Scan(
			&movie.ID,
			&movie.GenreID,
			&movie.Title,
			&movie.Price,
			&movie.AvailableSeats,
			&movie.Description,
			&movie.Duration,
			&movie.Showtime,
			&movie.CreatedAt,
			&movie.UpdatedAt,
			&movie.GenreName,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, rows.Err()
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET genre_id = $2, title = $3, price = $4, available_seats = $5,
		    description = $6, duration = $7, showtime = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.GenreID,
		movie.Title,
		movie.Price,
		movie.AvailableSeats,
		movie.Description,
		movie.Duration,
		movie.Showtime,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", movie.ID.String(), apperr.ErrNotFound)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", id.String(), apperr.ErrNotFound)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}

func (r *movieRepository) PurgeExcept(ctx context.Context, keepTitles []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin purge: %w", err)
	}
	defer tx.Rollback(ctx)

	condemned := `SELECT id FROM movies WHERE NOT (title = ANY($1))`

	// Dependents first, movies last.
	statements := []string{
		`DELETE FROM booking_items WHERE movie_id IN (` + condemned + `)`,
		`DELETE FROM watchlist WHERE movie_id IN (` + condemned + `)`,
		`DELETE FROM reviews WHERE movie_id IN (` + condemned + `)`,
		`DELETE FROM movies WHERE NOT (title = ANY($1))`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, keepTitles); err != nil {
			r.log.Error("Failed to purge movies", zap.Error(err))
			return fmt.Errorf("purge movies: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit purge: %w", err)
	}

	r.log.Info("Movies purged", zap.Strings("kept_titles", keepTitles))
	return nil
}
