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

type BookingRepository interface {
	// Create books the requested seats in one transaction: booking row, then
	// per item an atomic compare-and-decrement of the movie's available seats
	// and a booking_items row with the live price snapshot. Any item failing
	// rolls the whole booking back.
	Create(ctx context.Context, userID uuid.UUID, requests []entity.SeatRequest) (*entity.Booking, error)

	// CreateFromWatchlist books everything on the user's watchlist and clears
	// the consumed entries, all in the same transaction.
	CreateFromWatchlist(ctx context.Context, userID uuid.UUID) (*entity.Booking, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// ListAll returns the flat reporting join ordered by booking date then
	// booking id, both descending, with item rows in insertion order.
	ListAll(ctx context.Context) ([]*entity.BookingLine, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BookingLine, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, userID uuid.UUID, requests []entity.SeatRequest) (*entity.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking: %w", err)
	}
	defer tx.Rollback(ctx)

	booking, err := r.createInTx(ctx, tx, userID, requests)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	r.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("items", len(booking.Items)),
	)
	return booking, nil
}

func (r *bookingRepository) CreateFromWatchlist(ctx context.Context, userID uuid.UUID) (*entity.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the entries so a concurrent add or second checkout waits.
	rows, err := tx.Query(ctx,
		`SELECT movie_id, seats_selected FROM watchlist
		 WHERE user_id = $1 ORDER BY added_at, id FOR UPDATE`,
		userID,
	)
	if err != nil {
		r.log.Error("Failed to read watchlist for checkout",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("read watchlist for checkout: %w", err)
	}

	var requests []entity.SeatRequest
	for rows.Next() {
		var req entity.SeatRequest
		if err := rows.Scan(&req.MovieID, &req.Seats); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		requests = append(requests, req)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate watchlist rows: %w", err)
	}

	if len(requests) == 0 {
		return nil, apperr.Validationf("watchlist is empty")
	}

	booking, err := r.createInTx(ctx, tx, userID, requests)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM watchlist WHERE user_id = $1`, userID); err != nil {
		r.log.Error("Failed to clear consumed watchlist", zap.Error(err))
		return nil, fmt.Errorf("clear consumed watchlist: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	r.log.Info("Booking created from watchlist",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("items", len(booking.Items)),
	)
	return booking, nil
}

// createInTx holds the inventory invariant: for each item the decrement only
// happens when enough seats remain, in a single conditional UPDATE, so there
// is no window between check and decrement.
func (r *bookingRepository) createInTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, requests []entity.SeatRequest) (*entity.Booking, error) {
	booking := &entity.Booking{
		ID:          uuid.New(),
		UserID:      userID,
		BookingDate: time.Now(),
		Status:      entity.BookingStatusConfirmed,
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO bookings (id, user_id, booking_date, status) VALUES ($1, $2, $3, $4)`,
		booking.ID, booking.UserID, booking.BookingDate, booking.Status,
	)
	if err != nil {
		r.log.Error("Failed to insert booking", zap.Error(err))
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	for _, req := range requests {
		var price float64
		err := tx.QueryRow(ctx,
			`UPDATE movies
			 SET available_seats = available_seats - $2, updated_at = NOW()
			 WHERE id = $1 AND available_seats >= $2
			 RETURNING price`,
			req.MovieID, req.Seats,
		).Scan(&price)

		if err == pgx.ErrNoRows {
			// Either the movie is gone or it has too few seats left.
			var available int
			lookupErr := tx.QueryRow(ctx,
				`SELECT available_seats FROM movies WHERE id = $1`, req.MovieID,
			).Scan(&available)
			if lookupErr == pgx.ErrNoRows {
				return nil, fmt.Errorf("movie %s: %w", req.MovieID.String(), apperr.ErrNotFound)
			}
			if lookupErr != nil {
				return nil, fmt.Errorf("look up movie %s: %w", req.MovieID.String(), lookupErr)
			}
			return nil, &apperr.InventoryExceededError{
				MovieID:   req.MovieID,
				Requested: req.Seats,
				Available: available,
			}
		}
		if err != nil {
			r.log.Error("Failed to decrement seats",
				zap.Error(err),
				zap.String("movie_id", req.MovieID.String()),
				zap.Int("seats", req.Seats),
			)
			return nil, fmt.Errorf("decrement seats for movie %s: %w", req.MovieID.String(), err)
		}

		item := entity.BookingItem{
			ID:          uuid.New(),
			BookingID:   booking.ID,
			MovieID:     req.MovieID,
			SeatsBooked: req.Seats,
			Price:       price,
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO booking_items (id, booking_id, movie_id, seats_booked, price)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.BookingID, item.MovieID, item.SeatsBooked, item.Price,
		); err != nil {
			r.log.Error("Failed to insert booking item", zap.Error(err))
			return nil, fmt.Errorf("insert booking item: %w", err)
		}

		booking.Items = append(booking.Items, item)
	}

	return booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT id, user_id, booking_date, status FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.BookingDate,
		&booking.Status,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

const bookingLinesQuery = `
	SELECT b.id, b.booking_date, b.status, u.name, u.email,
	       bi.id, bi.movie_id, m.title, bi.seats_booked, bi.price
	FROM bookings b
	JOIN users u ON b.user_id = u.id
	LEFT JOIN booking_items bi ON bi.booking_id = b.id
	LEFT JOIN movies m ON bi.movie_id = m.id
`

func (r *bookingRepository) ListAll(ctx context.Context) ([]*entity.BookingLine, error) {
	query := bookingLinesQuery + ` ORDER BY b.booking_date DESC, b.id DESC, bi.id`
	return r.queryLines(ctx, query)
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BookingLine, error) {
	query := bookingLinesQuery + ` WHERE b.user_id = $1 ORDER BY b.booking_date DESC, b.id DESC, bi.id`
	return r.queryLines(ctx, query, userID)
}

func (r *bookingRepository) queryLines(ctx context.Context, query string, args ...any) ([]*entity.BookingLine, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var lines []*entity.BookingLine
	for rows.Next() {
		var line entity.BookingLine
		err := rows.Scan(
			&line.BookingID,
			&line.BookingDate,
			&line.Status,
			&line.UserName,
			&line.UserEmail,
			&line.ItemID,
			&line.MovieID,
			&line.MovieTitle,
			&line.Seats,
			&line.Price,
		)
		if err != nil {
			r.log.Error("Failed to scan booking line", zap.Error(err))
			return nil, fmt.Errorf("scan booking line: %w", err)
		}
		lines = append(lines, &line)
	}

	return lines, rows.Err()
}
