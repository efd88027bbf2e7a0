package domain

import (
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	BankPolaris  PaymentMethod = "POLARIS"
	BankAccess   PaymentMethod = "ACCESS"
	BankFidelity PaymentMethod = "FIDELITY"
	BankGT       PaymentMethod = "GT"
	BankFirst    PaymentMethod = "FIRST"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case BankPolaris, BankAccess, BankFidelity, BankGT, BankFirst:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPaid          PaymentStatus = "PAID"
	PaymentPaidAndSupply PaymentStatus = "PAID_AND_SUPPLY"
	PaymentPending       PaymentStatus = "PENDING"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPaidAndSupply, PaymentPending:
		return true
	}
	return false
}

// RentedItem is one line of a booking. Price is the unit price,
// Unit the quantity.
type RentedItem struct {
	ID    int64           `json:"id,omitempty"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Unit  int             `json:"unit"`
}

// LineTotal is price multiplied by quantity, exact decimal.
func (i RentedItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Unit)))
}

// Booking mirrors the kitchen API wire shape. Dates are calendar dates
// (YYYY-MM-DD strings, never times). TotalFee is computed by the API;
// the gateway only re-derives it for display checks.
type Booking struct {
	ID                 int64           `json:"id"`
	ClientName         string          `json:"client_name"`
	Address            string          `json:"address"`
	PaymentMethod      PaymentMethod   `json:"payment_method"`
	DeliveryDate       string          `json:"delivery_date"`
	CurrentDate        string          `json:"current_date"`
	ExpectedReturnDate string          `json:"expected_return_date"`
	TransportCost      decimal.Decimal `json:"transport_cost"`
	Discount           decimal.Decimal `json:"discount"`
	PaymentStatus      PaymentStatus   `json:"payment_status"`
	TotalFee           decimal.Decimal `json:"total_fee"`
	RentedItems        []RentedItem    `json:"rented_items"`
}

// BankFee is one row of the bank-fees report.
type BankFee struct {
	Bank     string          `json:"bank"`
	TotalFee decimal.Decimal `json:"total_fee"`
}
