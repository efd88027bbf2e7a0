package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"kitchenadmin/internal/domain"
)

// ReportsAPI is the slice of the kitchen API the report pages consume.
type ReportsAPI interface {
	ListBookings(ctx context.Context, token string) ([]domain.Booking, error)
	Revenue(ctx context.Context, token string, month, year int) (decimal.Decimal, error)
	BankFees(ctx context.Context, token string) ([]domain.BankFee, error)
}
