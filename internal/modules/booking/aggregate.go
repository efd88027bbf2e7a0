package booking

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kitchenadmin/internal/domain"
)

// ItemDraft is one rented-item row of a booking being composed. LocalID is
// a stable identifier so rows survive reordering and removal without the
// index-splicing bugs of positional addressing.
type ItemDraft struct {
	LocalID string          `json:"local_id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Unit    int             `json:"unit"`
}

// Draft is the client-side booking aggregate: the form state for a booking
// that has not been submitted yet. It carries no id and no total_fee;
// those come back from the API on create.
type Draft struct {
	ClientName         string               `json:"client_name"`
	Address            string               `json:"address"`
	PaymentMethod      domain.PaymentMethod `json:"payment_method"`
	DeliveryDate       string               `json:"delivery_date"`
	CurrentDate        string               `json:"current_date"`
	ExpectedReturnDate string               `json:"expected_return_date"`
	TransportCost      decimal.Decimal      `json:"transport_cost"`
	Discount           decimal.Decimal      `json:"discount"`
	PaymentStatus      domain.PaymentStatus `json:"payment_status"`
	Items              []ItemDraft          `json:"rented_items"`
}

// NewDraft starts a draft the way the add-booking form opens: one empty
// item row, quantity 1, discount 0, the first bank and PAID preselected.
func NewDraft() *Draft {
	d := &Draft{
		PaymentMethod: domain.BankPolaris,
		PaymentStatus: domain.PaymentPaid,
		Discount:      decimal.Zero,
	}
	d.AddItem()
	return d
}

// AddItem appends a fresh row with default quantity 1 and returns it.
func (d *Draft) AddItem() *ItemDraft {
	d.Items = append(d.Items, ItemDraft{
		LocalID: uuid.NewString(),
		Unit:    1,
	})
	return &d.Items[len(d.Items)-1]
}

// RemoveItem deletes the row with the given local id, preserving the order
// of the rest. A booking must keep at least one item, so removing the last
// remaining row is a no-op. Returns whether a row was removed.
func (d *Draft) RemoveItem(localID string) bool {
	if len(d.Items) <= 1 {
		return false
	}
	for i, item := range d.Items {
		if item.LocalID == localID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Total is the draft's derived document total.
func (d *Draft) Total() decimal.Decimal {
	items := make([]domain.RentedItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domain.RentedItem{Name: it.Name, Price: it.Price, Unit: it.Unit})
	}
	return ComputeTotal(items, d.TransportCost, d.Discount)
}

// ComputeTotal sums price×unit over the items, adds the transport cost and
// subtracts the discount. Exact decimal arithmetic: the result must match
// the API's total_fee bit for bit. A discount larger than everything else
// yields a negative total on purpose. That is a data problem for the
// operator to see, not for this code to hide.
func ComputeTotal(items []domain.RentedItem, transportCost, discount decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total.Add(transportCost).Sub(discount)
}
