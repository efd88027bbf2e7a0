package booking

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kitchenadmin/internal/domain"
	"kitchenadmin/internal/kitchenapi"
)

type MockKitchenAPI struct {
	mock.Mock
}

func (m *MockKitchenAPI) ListBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockKitchenAPI) GetBooking(ctx context.Context, token string, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockKitchenAPI) CreateBooking(ctx context.Context, token string, payload kitchenapi.CreateBookingPayload) (*domain.Booking, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockKitchenAPI) UpdatePaymentStatus(ctx context.Context, token string, id int64, status domain.PaymentStatus) (*domain.Booking, error) {
	args := m.Called(ctx, token, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockKitchenAPI) DeleteBooking(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func validCreateRequest() CreateBookingRequest {
	return CreateBookingRequest{
		ClientName:         "Ada Obi",
		Address:            "12 Allen Avenue, Ikeja",
		PaymentMethod:      domain.BankGT,
		DeliveryDate:       "2026-09-01",
		CurrentDate:        "2026-08-30",
		ExpectedReturnDate: "2026-09-03",
		TransportCost:      ptr(dec("300.00")),
		Discount:           ptr(dec("50.00")),
		PaymentStatus:      domain.PaymentPaid,
		RentedItems: []CreateItemRequest{
			{Name: "Chair", Price: ptr(dec("500.00")), Unit: 4},
			{Name: "Canopy", Price: ptr(dec("1500.00")), Unit: 1},
		},
	}
}

func TestService_Create_Success(t *testing.T) {
	api := new(MockKitchenAPI)
	api.On("CreateBooking", mock.Anything, "tok", mock.MatchedBy(func(p kitchenapi.CreateBookingPayload) bool {
		return len(p.RentedItems) == 2 &&
			p.RentedItems[0].Name == "Chair" &&
			p.RentedItems[1].Name == "Canopy" &&
			p.Discount.Equal(dec("50.00"))
	})).Return(&domain.Booking{ID: 42, ClientName: "Ada Obi"}, nil)

	service := NewService(api)
	b, err := service.Create(context.Background(), "tok", validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), b.ID)
	api.AssertExpectations(t)
}

func TestService_Create_DiscountDefaultsToZero(t *testing.T) {
	api := new(MockKitchenAPI)
	api.On("CreateBooking", mock.Anything, "tok", mock.MatchedBy(func(p kitchenapi.CreateBookingPayload) bool {
		return p.Discount.IsZero()
	})).Return(&domain.Booking{ID: 1}, nil)

	req := validCreateRequest()
	req.Discount = nil

	service := NewService(api)
	_, err := service.Create(context.Background(), "tok", req)

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestService_Create_RejectsUnknownBank(t *testing.T) {
	api := new(MockKitchenAPI)
	service := NewService(api)

	req := validCreateRequest()
	req.PaymentMethod = "ZENITH"

	_, err := service.Create(context.Background(), "tok", req)
	assert.ErrorIs(t, err, ErrValidation)
	api.AssertNotCalled(t, "CreateBooking")
}

func TestService_Create_RejectsNegativePrice(t *testing.T) {
	api := new(MockKitchenAPI)
	service := NewService(api)

	req := validCreateRequest()
	req.RentedItems[0].Price = ptr(dec("-1"))

	_, err := service.Create(context.Background(), "tok", req)
	assert.ErrorIs(t, err, ErrValidation)
	api.AssertNotCalled(t, "CreateBooking")
}

func TestService_Get_DerivedTotalAgrees(t *testing.T) {
	api := new(MockKitchenAPI)
	api.On("GetBooking", mock.Anything, "tok", int64(7)).Return(&domain.Booking{
		ID:            7,
		TransportCost: dec("0"),
		Discount:      dec("0"),
		TotalFee:      dec("2000.00"),
		RentedItems: []domain.RentedItem{
			{Name: "Chair", Price: dec("500"), Unit: 4},
		},
	}, nil)

	service := NewService(api)
	details, err := service.Get(context.Background(), "tok", 7)

	require.NoError(t, err)
	assert.True(t, details.TotalMatches)
	assert.True(t, details.DerivedTotal.Equal(dec("2000")))
}

func TestService_Get_FlagsTotalMismatch(t *testing.T) {
	api := new(MockKitchenAPI)
	api.On("GetBooking", mock.Anything, "tok", int64(7)).Return(&domain.Booking{
		ID:       7,
		TotalFee: dec("1999.99"),
		RentedItems: []domain.RentedItem{
			{Name: "Chair", Price: dec("500"), Unit: 4},
		},
	}, nil)

	service := NewService(api)
	details, err := service.Get(context.Background(), "tok", 7)

	require.NoError(t, err)
	assert.False(t, details.TotalMatches)
}

func TestService_List_FiltersByNameAndStatus(t *testing.T) {
	api := new(MockKitchenAPI)
	api.On("ListBookings", mock.Anything, "tok").Return([]domain.Booking{
		{ID: 1, ClientName: "Ada Obi", PaymentStatus: domain.PaymentPaid},
		{ID: 2, ClientName: "Bola Ade", PaymentStatus: domain.PaymentPending},
		{ID: 3, ClientName: "Adaeze N", PaymentStatus: domain.PaymentPending},
	}, nil)

	service := NewService(api)

	byName, err := service.List(context.Background(), "tok", ListFilter{Query: "ada"})
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	byBoth, err := service.List(context.Background(), "tok", ListFilter{Query: "ada", PaymentStatus: domain.PaymentPending})
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	assert.Equal(t, int64(3), byBoth[0].ID)
}

func TestService_ChangePaymentStatus_ReturnsServerState(t *testing.T) {
	api := new(MockKitchenAPI)
	api.On("UpdatePaymentStatus", mock.Anything, "tok", int64(5), domain.PaymentPending).
		Return(&domain.Booking{ID: 5, PaymentStatus: domain.PaymentPending}, nil)

	service := NewService(api)
	b, err := service.ChangePaymentStatus(context.Background(), "tok", 5, domain.PaymentPending)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
}

func TestService_ChangePaymentStatus_RejectsUnknownStatus(t *testing.T) {
	api := new(MockKitchenAPI)
	service := NewService(api)

	_, err := service.ChangePaymentStatus(context.Background(), "tok", 5, "REFUNDED")
	assert.ErrorIs(t, err, ErrValidation)
	api.AssertNotCalled(t, "UpdatePaymentStatus")
}
