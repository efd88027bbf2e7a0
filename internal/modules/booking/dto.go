package booking

import (
	"github.com/shopspring/decimal"

	"kitchenadmin/internal/domain"
)

// CreateBookingRequest is the add-booking form submission. Binding tags
// mirror the form's required fields; anything subtler than presence is
// left for the kitchen API to reject.
type CreateBookingRequest struct {
	ClientName         string               `json:"client_name" binding:"required"`
	Address            string               `json:"address" binding:"required"`
	PaymentMethod      domain.PaymentMethod `json:"payment_method" binding:"required"`
	DeliveryDate       string               `json:"delivery_date" binding:"required,datetime=2006-01-02"`
	CurrentDate        string               `json:"current_date" binding:"required,datetime=2006-01-02"`
	ExpectedReturnDate string               `json:"expected_return_date" binding:"required,datetime=2006-01-02"`
	TransportCost      *decimal.Decimal     `json:"transport_cost" binding:"required"`
	Discount           *decimal.Decimal     `json:"discount"`
	PaymentStatus      domain.PaymentStatus `json:"payment_status" binding:"required"`
	RentedItems        []CreateItemRequest  `json:"rented_items" binding:"required,min=1,dive"`
}

// CreateItemRequest keeps Price a pointer so an entered price of 0 is
// distinguishable from a missing one.
type CreateItemRequest struct {
	Name  string           `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price" binding:"required"`
	Unit  int              `json:"unit" binding:"required,min=1"`
}

// ListFilter is the bookings page's search box and status dropdown.
type ListFilter struct {
	Query         string
	PaymentStatus domain.PaymentStatus
}

// BookingDetails is the detail page view: the server's booking plus the
// total re-derived locally. The two must agree exactly; a mismatch is
// surfaced, never papered over.
type BookingDetails struct {
	Booking      domain.Booking  `json:"booking"`
	DerivedTotal decimal.Decimal `json:"derived_total_fee"`
	TotalMatches bool            `json:"total_matches"`
}
