package invoice

import (
	"context"

	"kitchenadmin/internal/domain"
)

// BookingReader fetches the booking behind a summary export.
type BookingReader interface {
	GetBooking(ctx context.Context, token string, id int64) (*domain.Booking, error)
}
