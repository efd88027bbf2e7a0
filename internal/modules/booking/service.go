package booking

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"kitchenadmin/internal/domain"
	"kitchenadmin/internal/kitchenapi"
)

type Service struct {
	api KitchenAPI
}

func NewService(api KitchenAPI) *Service {
	return &Service{api: api}
}

// List fetches all bookings and applies the page's local filtering: a
// case-insensitive client-name search and an optional payment status.
func (s *Service) List(ctx context.Context, token string, filter ListFilter) ([]domain.Booking, error) {
	bookings, err := s.api.ListBookings(ctx, token)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if query != "" && !strings.Contains(strings.ToLower(b.ClientName), query) {
			continue
		}
		if filter.PaymentStatus != "" && b.PaymentStatus != filter.PaymentStatus {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// Get fetches one booking and re-derives its total locally. The API's
// total_fee is authoritative; the derived value exists so a disagreement
// is visible on the detail page instead of silently trusted.
func (s *Service) Get(ctx context.Context, token string, id int64) (*BookingDetails, error) {
	b, err := s.api.GetBooking(ctx, token, id)
	if err != nil {
		return nil, err
	}

	derived := ComputeTotal(b.RentedItems, b.TransportCost, b.Discount)
	return &BookingDetails{
		Booking:      *b,
		DerivedTotal: derived,
		TotalMatches: derived.Equal(b.TotalFee),
	}, nil
}

// Create validates the draft and posts it. Items go to the API in the
// exact order they were entered; the draft carries no id and no total.
func (s *Service) Create(ctx context.Context, token string, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.PaymentMethod.Valid() || !req.PaymentStatus.Valid() {
		return nil, ErrValidation
	}
	if req.TransportCost == nil || req.TransportCost.IsNegative() {
		return nil, ErrValidation
	}

	discount := decimal.Zero
	if req.Discount != nil {
		if req.Discount.IsNegative() {
			return nil, ErrValidation
		}
		discount = *req.Discount
	}

	items := make([]domain.RentedItem, 0, len(req.RentedItems))
	for _, it := range req.RentedItems {
		if it.Price == nil || it.Price.IsNegative() || it.Unit < 1 || strings.TrimSpace(it.Name) == "" {
			return nil, ErrValidation
		}
		items = append(items, domain.RentedItem{
			Name:  it.Name,
			Price: *it.Price,
			Unit:  it.Unit,
		})
	}

	payload := kitchenapi.CreateBookingPayload{
		ClientName:         req.ClientName,
		Address:            req.Address,
		PaymentMethod:      req.PaymentMethod,
		DeliveryDate:       req.DeliveryDate,
		CurrentDate:        req.CurrentDate,
		ExpectedReturnDate: req.ExpectedReturnDate,
		TransportCost:      *req.TransportCost,
		Discount:           discount,
		PaymentStatus:      req.PaymentStatus,
		RentedItems:        items,
	}
	return s.api.CreateBooking(ctx, token, payload)
}

// ChangePaymentStatus patches one field and returns the server's booking.
// Local state is replaced with the response only on success; there is no
// optimistic update to roll back.
func (s *Service) ChangePaymentStatus(ctx context.Context, token string, id int64, status domain.PaymentStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, ErrValidation
	}
	return s.api.UpdatePaymentStatus(ctx, token, id, status)
}

func (s *Service) Delete(ctx context.Context, token string, id int64) error {
	return s.api.DeleteBooking(ctx, token, id)
}
