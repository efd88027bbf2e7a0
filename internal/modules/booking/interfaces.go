package booking

import (
	"context"

	"kitchenadmin/internal/domain"
	"kitchenadmin/internal/kitchenapi"
)

// KitchenAPI is the slice of the remote kitchen API the booking pages use.
type KitchenAPI interface {
	ListBookings(ctx context.Context, token string) ([]domain.Booking, error)
	GetBooking(ctx context.Context, token string, id int64) (*domain.Booking, error)
	CreateBooking(ctx context.Context, token string, payload kitchenapi.CreateBookingPayload) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, token string, id int64, status domain.PaymentStatus) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, token string, id int64) error
}
