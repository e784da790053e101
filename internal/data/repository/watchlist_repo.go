package repository

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/apperr"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type WatchlistRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistItem, error)

	// Upsert merges seats into the user's entry for the movie, creating it if
	// absent. The whole merge runs in one transaction holding a row lock on
	// the movie, so two concurrent adds for the same pair serialize and the
	// merged total is validated against live availability.
	Upsert(ctx context.Context, userID, movieID uuid.UUID, seats int) (*entity.WatchlistEntry, error)

	// Delete removes an entry by id. Deleting an absent id is treated as
	// success: the end state the caller asked for already holds.
	Delete(ctx context.Context, entryID uuid.UUID) error
}

type watchlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWatchlistRepository(db database.PgxIface, log *zap.Logger) WatchlistRepository {
	return &watchlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "watchlist")),
	}
}

func (r *watchlistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistItem, error) {
	query := `
		SELECT w.id, w.movie_id, w.seats_selected, m.title, m.price
		FROM watchlist w
		JOIN movies m ON w.movie_id = m.id
		WHERE w.user_id = $1
		ORDER BY w.added_at, w.id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find watchlist by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find watchlist by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var items []*entity.WatchlistItem
	for rows.Next() {
		var item entity.WatchlistItem
		err := rows.Scan(
			&item.EntryID,
			&item.MovieID,
			&item.SeatsSelected,
			&item.MovieTitle,
			&item.Price,
		)
		if err != nil {
			r.log.Error("Failed to scan watchlist row", zap.Error(err))
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *watchlistRepository) Upsert(ctx context.Context, userID, movieID uuid.UUID, seats int) (*entity.WatchlistEntry, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin watchlist upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the movie row for the duration of the merge.
	var available int
	err = tx.QueryRow(ctx,
		`SELECT available_seats FROM movies WHERE id = $1 FOR UPDATE`,
		movieID,
	).Scan(&available)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("movie %s: %w", movieID.String(), apperr.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to lock movie for watchlist upsert",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("lock movie %s: %w", movieID.String(), err)
	}

	entry := &entity.WatchlistEntry{
		UserID:        userID,
		MovieID:       movieID,
		SeatsSelected: seats,
	}

	var existing int
	err = tx.QueryRow(ctx,
		`SELECT id, seats_selected, added_at FROM watchlist WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID,
	).Scan(&entry.ID, &existing, &entry.AddedAt)

	switch err {
	case nil:
		entry.SeatsSelected = existing + seats
		if entry.SeatsSelected > available {
			return nil, &apperr.InventoryExceededError{
				MovieID:   movieID,
				Requested: entry.SeatsSelected,
				Available: available,
			}
		}
		if _, err := tx.Exec(ctx,
			`UPDATE watchlist SET seats_selected = $2 WHERE id = $1`,
			entry.ID, entry.SeatsSelected,
		); err != nil {
			r.log.Error("Failed to merge watchlist entry", zap.Error(err))
			return nil, fmt.Errorf("merge watchlist entry %s: %w", entry.ID.String(), err)
		}

	case pgx.ErrNoRows:
		if seats > available {
			return nil, &apperr.InventoryExceededError{
				MovieID:   movieID,
				Requested: seats,
				Available: available,
			}
		}
		entry.ID = uuid.New()
		entry.AddedAt = time.Now()
		if _, err := tx.Exec(ctx,
			`INSERT INTO watchlist (id, user_id, movie_id, seats_selected, added_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			entry.ID, userID, movieID, entry.SeatsSelected, entry.AddedAt,
		); err != nil {
			r.log.Error("Failed to insert watchlist entry", zap.Error(err))
			return nil, fmt.Errorf("insert watchlist entry: %w", err)
		}

	default:
		r.log.Error("Failed to read watchlist entry", zap.Error(err))
		return nil, fmt.Errorf("read watchlist entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit watchlist upsert: %w", err)
	}

	return entry, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, entryID uuid.UUID) error {
	query := `DELETE FROM watchlist WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, entryID); err != nil {
		r.log.Error("Failed to delete watchlist entry",
			zap.Error(err),
			zap.String("entry_id", entryID.String()),
		)
		return fmt.Errorf("delete watchlist entry %s: %w", entryID.String(), err)
	}

	return nil
}
