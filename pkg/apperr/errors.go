package apperr

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("credentials required")
	ErrForbidden    = errors.New("not authorized")
)

// ValidationError marks missing or malformed input. Handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InventoryExceededError is returned when a seat selection or booking asks for
// more seats than the movie currently has available.
type InventoryExceededError struct {
	MovieID   uuid.UUID
	Requested int
	Available int
}

func (e *InventoryExceededError) Error() string {
	return fmt.Sprintf("cannot select %d seats: only %d seats are available for this movie",
		e.Requested, e.Available)
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsInventoryExceeded(err error) bool {
	var ie *InventoryExceededError
	return errors.As(err, &ie)
}
