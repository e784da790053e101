package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/apperr"
	"movie-booking/pkg/utils"
)

// memStore backs in-memory stand-ins for the Postgres repositories. The
// per-interface wrappers below honor the same contracts as the real ones:
// merged watchlist totals are validated against live availability, bookings
// decrement seats atomically under one lock, and missing rows come back as
// wrapped apperr.ErrNotFound.
type memStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	genres    map[uuid.UUID]*entity.Genre
	movies    map[uuid.UUID]*entity.Movie
	watchlist []*entity.WatchlistEntry
	bookings  []*entity.Booking
	payments  []*entity.Payment
	reviews   []*entity.Review
}

func newMemStore() *memStore {
	return &memStore{
		users:  map[uuid.UUID]*entity.User{},
		genres: map[uuid.UUID]*entity.Genre{},
		movies: map[uuid.UUID]*entity.Movie{},
	}
}

func (s *memStore) repos() *repository.Repository {
	return &repository.Repository{
		User:      &memUserRepo{s},
		Genre:     &memGenreRepo{s},
		Movie:     &memMovieRepo{s},
		Watchlist: &memWatchlistRepo{s},
		Booking:   &memBookingRepo{s},
		Payment:   &memPaymentRepo{s},
		Review:    &memReviewRepo{s},
	}
}

func newTestService(s *memStore) *Service {
	return NewService(s.repos(), nil, zap.NewNop())
}

func (s *memStore) seedUser(name, email, password string, isAdmin bool) *entity.User {
	hash, _ := utils.HashPassword(password)
	s.mu.Lock()
	defer s.mu.Unlock()
	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	copied := *user
	return &copied
}

func (s *memStore) seedMovie(title string, price float64, seats int) *entity.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	movie := &entity.Movie{
		Title:          title,
		Price:          price,
		AvailableSeats: seats,
		Showtime:       time.Now().Add(24 * time.Hour),
	}
	movie.ID = uuid.New()
	movie.CreatedAt = time.Now()
	s.movies[movie.ID] = movie
	copied := *movie
	return &copied
}

func (s *memStore) availableSeats(movieID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if movie, ok := s.movies[movieID]; ok {
		return movie.AvailableSeats
	}
	return -1
}

func (s *memStore) watchlistSize(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, entry := range s.watchlist {
		if entry.UserID == userID {
			n++
		}
	}
	return n
}

// ---- users ----

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.users[user.ID]; exists {
		return fmt.Errorf("create user %s: duplicate key %s", user.Email, user.ID)
	}
	copied := *user
	r.s.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, user := range r.s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		copied := *user
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return fmt.Errorf("user %s: %w", user.ID.String(), apperr.ErrNotFound)
	}
	copied := *user
	r.s.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id.String(), apperr.ErrNotFound)
	}
	delete(r.s.users, id)
	return nil
}

// ---- genres ----

type memGenreRepo struct{ s *memStore }

func (r *memGenreRepo) Create(ctx context.Context, genre *entity.Genre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.genres[genre.ID]; exists {
		return fmt.Errorf("create genre %s: duplicate key %s", genre.Name, genre.ID)
	}
	copied := *genre
	r.s.genres[genre.ID] = &copied
	return nil
}

func (r *memGenreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	genre, ok := r.s.genres[id]
	if !ok {
		return nil, nil
	}
	copied := *genre
	return &copied, nil
}

func (r *memGenreRepo) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Genre, 0, len(r.s.genres))
	for _, genre := range r.s.genres {
		copied := *genre
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memGenreRepo) Update(ctx context.Context, genre *entity.Genre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.genres[genre.ID]; !ok {
		return fmt.Errorf("genre %s: %w", genre.ID.String(), apperr.ErrNotFound)
	}
	copied := *genre
	r.s.genres[genre.ID] = &copied
	return nil
}

func (r *memGenreRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.genres[id]; !ok {
		return fmt.Errorf("genre %s: %w", id.String(), apperr.ErrNotFound)
	}
	delete(r.s.genres, id)
	return nil
}

// ---- movies ----

type memMovieRepo struct{ s *memStore }

func (r *memMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.movies[movie.ID]; exists {
		return fmt.Errorf("create movie %s: duplicate key %s", movie.Title, movie.ID)
	}
	copied := *movie
	r.s.movies[movie.ID] = &copied
	return nil
}

func (r *memMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	movie, ok := r.s.movies[id]
	if !ok {
		return nil, nil
	}
	copied := *movie
	return &copied, nil
}

func (r *memMovieRepo) FindWithGenre(ctx context.Context, id uuid.UUID) (*entity.MovieWithGenre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	movie, ok := r.s.movies[id]
	if !ok {
		return nil, nil
	}
	row := &entity.MovieWithGenre{Movie: *movie}
	if genre, ok := r.s.genres[movie.GenreID]; ok {
		row.GenreName = genre.Name
	}
	return row, nil
}

func (r *memMovieRepo) FindAll(ctx context.Context, genreID *uuid.UUID) ([]*entity.MovieWithGenre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.MovieWithGenre{}
	for _, movie := range r.s.movies {
		if genreID != nil && movie.GenreID != *genreID {
			continue
		}
		row := &entity.MovieWithGenre{Movie: *movie}
		if genre, ok := r.s.genres[movie.GenreID]; ok {
			row.GenreName = genre.Name
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *memMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movies[movie.ID]; !ok {
		return fmt.Errorf("movie %s: %w", movie.ID.String(), apperr.ErrNotFound)
	}
	copied := *movie
	r.s.movies[movie.ID] = &copied
	return nil
}

func (r *memMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movies[id]; !ok {
		return fmt.Errorf("movie %s: %w", id.String(), apperr.ErrNotFound)
	}
	delete(r.s.movies, id)
	return nil
}

func (r *memMovieRepo) PurgeExcept(ctx context.Context, keepTitles []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	keep := map[string]bool{}
	for _, title := range keepTitles {
		keep[title] = true
	}
	for id, movie := range r.s.movies {
		if !keep[movie.Title] {
			delete(r.s.movies, id)
		}
	}
	return nil
}

// ---- watchlist ----

type memWatchlistRepo struct{ s *memStore }

func (r *memWatchlistRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.WatchlistItem{}
	for _, entry := range r.s.watchlist {
		if entry.UserID != userID {
			continue
		}
		item := &entity.WatchlistItem{
			EntryID:       entry.ID,
			MovieID:       entry.MovieID,
			SeatsSelected: entry.SeatsSelected,
		}
		if movie, ok := r.s.movies[entry.MovieID]; ok {
			item.MovieTitle = movie.Title
			item.Price = movie.Price
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *memWatchlistRepo) Upsert(ctx context.Context, userID, movieID uuid.UUID, seats int) (*entity.WatchlistEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	movie, ok := r.s.movies[movieID]
	if !ok {
		return nil, fmt.Errorf("movie %s: %w", movieID.String(), apperr.ErrNotFound)
	}

	var existing *entity.WatchlistEntry
	for _, entry := range r.s.watchlist {
		if entry.UserID == userID && entry.MovieID == movieID {
			existing = entry
			break
		}
	}

	total := seats
	if existing != nil {
		total += existing.SeatsSelected
	}
	if total > movie.AvailableSeats {
		return nil, &apperr.InventoryExceededError{
			MovieID:   movieID,
			Requested: total,
			Available: movie.AvailableSeats,
		}
	}

	if existing != nil {
		existing.SeatsSelected = total
		copied := *existing
		return &copied, nil
	}

	entry := &entity.WatchlistEntry{
		ID:            uuid.New(),
		UserID:        userID,
		MovieID:       movieID,
		SeatsSelected: seats,
		AddedAt:       time.Now(),
	}
	r.s.watchlist = append(r.s.watchlist, entry)
	copied := *entry
	return &copied, nil
}

func (r *memWatchlistRepo) Delete(ctx context.Context, entryID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, entry := range r.s.watchlist {
		if entry.ID == entryID {
			r.s.watchlist = append(r.s.watchlist[:i], r.s.watchlist[i+1:]...)
			return nil
		}
	}
	return nil
}

// ---- bookings ----

type memBookingRepo struct{ s *memStore }

func (r *memBookingRepo) Create(ctx context.Context, userID uuid.UUID, requests []entity.SeatRequest) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.createLocked(userID, requests)
}

// createLocked applies the all-or-nothing decrement under the store lock.
func (r *memBookingRepo) createLocked(userID uuid.UUID, requests []entity.SeatRequest) (*entity.Booking, error) {
	for _, req := range requests {
		movie, ok := r.s.movies[req.MovieID]
		if !ok {
			return nil, fmt.Errorf("movie %s: %w", req.MovieID.String(), apperr.ErrNotFound)
		}
		if req.Seats > movie.AvailableSeats {
			return nil, &apperr.InventoryExceededError{
				MovieID:   req.MovieID,
				Requested: req.Seats,
				Available: movie.AvailableSeats,
			}
		}
	}

	booking := &entity.Booking{
		ID:          uuid.New(),
		UserID:      userID,
		BookingDate: time.Now(),
		Status:      entity.BookingStatusConfirmed,
	}
	for _, req := range requests {
		movie := r.s.movies[req.MovieID]
		movie.AvailableSeats -= req.Seats
		booking.Items = append(booking.Items, entity.BookingItem{
			ID:          uuid.New(),
			BookingID:   booking.ID,
			MovieID:     req.MovieID,
			SeatsBooked: req.Seats,
			Price:       movie.Price,
		})
	}
	r.s.bookings = append(r.s.bookings, booking)
	return booking, nil
}

func (r *memBookingRepo) CreateFromWatchlist(ctx context.Context, userID uuid.UUID) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var requests []entity.SeatRequest
	for _, entry := range r.s.watchlist {
		if entry.UserID == userID {
			requests = append(requests, entity.SeatRequest{MovieID: entry.MovieID, Seats: entry.SeatsSelected})
		}
	}
	if len(requests) == 0 {
		return nil, apperr.Validationf("watchlist is empty")
	}

	booking, err := r.createLocked(userID, requests)
	if err != nil {
		return nil, err
	}

	remaining := r.s.watchlist[:0]
	for _, entry := range r.s.watchlist {
		if entry.UserID != userID {
			remaining = append(remaining, entry)
		}
	}
	r.s.watchlist = remaining
	return booking, nil
}

func (r *memBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, booking := range r.s.bookings {
		if booking.ID == id {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memBookingRepo) ListAll(ctx context.Context) ([]*entity.BookingLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.linesLocked(nil), nil
}

func (r *memBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BookingLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.linesLocked(&userID), nil
}

func (r *memBookingRepo) linesLocked(userID *uuid.UUID) []*entity.BookingLine {
	lines := []*entity.BookingLine{}
	for i := len(r.s.bookings) - 1; i >= 0; i-- {
		booking := r.s.bookings[i]
		if userID != nil && booking.UserID != *userID {
			continue
		}
		var userName, userEmail string
		if user, ok := r.s.users[booking.UserID]; ok {
			userName = user.Name
			userEmail = user.Email
		}
		if len(booking.Items) == 0 {
			lines = append(lines, &entity.BookingLine{
				BookingID:   booking.ID,
				BookingDate: booking.BookingDate,
				Status:      booking.Status,
				UserName:    userName,
				UserEmail:   userEmail,
			})
			continue
		}
		for _, item := range booking.Items {
			itemID := item.ID
			movieID := item.MovieID
			seats := item.SeatsBooked
			price := item.Price
			line := &entity.BookingLine{
				BookingID:   booking.ID,
				BookingDate: booking.BookingDate,
				Status:      booking.Status,
				UserName:    userName,
				UserEmail:   userEmail,
				ItemID:      &itemID,
				MovieID:     &movieID,
				Seats:       &seats,
				Price:       &price,
			}
			if movie, ok := r.s.movies[item.MovieID]; ok {
				title := movie.Title
				line.MovieTitle = &title
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// ---- payments ----

type memPaymentRepo struct{ s *memStore }

func (r *memPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.payments {
		if existing.ID == payment.ID {
			return fmt.Errorf("create payment: duplicate key %s", payment.ID)
		}
	}
	copied := *payment
	r.s.payments = append(r.s.payments, &copied)
	return nil
}

func (r *memPaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Payment{}
	for _, payment := range r.s.payments {
		if payment.BookingID == bookingID {
			copied := *payment
			out = append(out, &copied)
		}
	}
	return out, nil
}

// ---- reviews ----

type memReviewRepo struct{ s *memStore }

func (r *memReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.reviews {
		if existing.ID == review.ID {
			return fmt.Errorf("create review: duplicate key %s", review.ID)
		}
	}
	copied := *review
	r.s.reviews = append(r.s.reviews, &copied)
	return nil
}

func (r *memReviewRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewWithAuthor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.ReviewWithAuthor{}
	for _, review := range r.s.reviews {
		if review.MovieID != movieID {
			continue
		}
		row := &entity.ReviewWithAuthor{Review: *review}
		if user, ok := r.s.users[review.UserID]; ok {
			row.UserName = user.Name
		}
		out = append(out, row)
	}
	return out, nil
}
