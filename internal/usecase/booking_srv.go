package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/apperr"
	"movie-booking/pkg/cache"
	"movie-booking/pkg/utils"
)

const (
	defaultPaymentMethod = "cash"
	defaultPaymentStatus = "success"
)

type BookingService interface {
	// Create books explicit items when the request carries them, otherwise
	// checks out the user's watchlist. Either way the booking is atomic:
	// one short line of seats failing fails the whole request.
	Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	ListAll(ctx context.Context) ([]response.BookingResponse, error)
	ListByUser(ctx context.Context, userID string) ([]response.BookingResponse, error)
	RecordPayment(ctx context.Context, req *request.PaymentRequest) error
	ListPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	payments repository.PaymentRepository
	users    repository.UserRepository
	cache    *cache.Cache
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, catalogCache *cache.Cache, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: repo.Booking,
		payments: repo.Payment,
		users:    repo.User,
		cache:    catalogCache,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	rawUserID := req.CanonicalUserID()
	if rawUserID == "" {
		return nil, apperr.Validationf("user_id is required")
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format: %s", rawUserID)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("user %s", rawUserID)
	}

	var booking *entity.Booking
	if len(req.Items) > 0 {
		requests := make([]entity.SeatRequest, 0, len(req.Items))
		for _, item := range req.Items {
			rawMovieID, seats := item.Canonical()
			movieID, err := uuid.Parse(rawMovieID)
			if err != nil {
				return nil, apperr.Validationf("invalid movie ID format: %s", rawMovieID)
			}
			if seats <= 0 {
				return nil, apperr.Validationf("seat count must be positive, got %d", seats)
			}
			requests = append(requests, entity.SeatRequest{MovieID: movieID, Seats: seats})
		}
		booking, err = s.bookings.Create(ctx, userID, requests)
	} else {
		booking, err = s.bookings.CreateFromWatchlist(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	// Seat counts changed, so any cached catalog listing is stale.
	s.cache.Invalidate(ctx, "movies:*")

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("items", len(booking.Items)),
	)

	return s.toResponse(booking, user), nil
}

func (s *bookingService) toResponse(booking *entity.Booking, user *entity.User) *response.BookingResponse {
	resp := &response.BookingResponse{
		BookingID:   booking.ID.String(),
		BookingDate: booking.BookingDate,
		Status:      booking.Status,
		UserName:    user.Name,
		UserEmail:   user.Email,
		Items:       []response.BookingItemResponse{},
	}
	for _, item := range booking.Items {
		resp.Items = append(resp.Items, response.BookingItemResponse{
			BookingItemID: item.ID.String(),
			MovieID:       item.MovieID.String(),
			Seats:         item.SeatsBooked,
			Price:         item.Price,
		})
		resp.TotalSeats += item.SeatsBooked
		resp.TotalAmount += float64(item.SeatsBooked) * item.Price
	}
	return resp
}

func (s *bookingService) ListAll(ctx context.Context) ([]response.BookingResponse, error) {
	lines, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.GroupBookingLines(lines), nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format: %s", userID)
	}

	lines, err := s.bookings.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.GroupBookingLines(lines), nil
}

func (s *bookingService) RecordPayment(ctx context.Context, req *request.PaymentRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return apperr.Validationf("invalid booking ID format: %s", req.BookingID)
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return apperr.NotFoundf("booking %s", req.BookingID)
	}

	payment := &entity.Payment{
		ID:          uuid.New(),
		BookingID:   bookingID,
		PaymentDate: time.Now(),
		Amount:      req.Amount,
		Method:      req.Method,
		Status:      req.Status,
	}
	if payment.Method == "" {
		payment.Method = defaultPaymentMethod
	}
	if payment.Status == "" {
		payment.Status = defaultPaymentStatus
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		s.log.Error("Failed to record payment", zap.Error(err), zap.String("booking_id", req.BookingID))
		return err
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Float64("amount", req.Amount),
		zap.String("method", payment.Method),
	)
	return nil
}

func (s *bookingService) ListPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validationf("invalid booking ID format: %s", bookingID)
	}

	payments, err := s.payments.FindByBookingID(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.PaymentsToResponse(payments), nil
}
