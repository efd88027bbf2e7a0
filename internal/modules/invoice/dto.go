package invoice

import "github.com/shopspring/decimal"

// InvoiceRequest is the standalone invoice form: a customer, an optional
// address and a flat list of priced items. Quantities are implicit here;
// this variant prints one price per line.
type InvoiceRequest struct {
	CustomerName string               `json:"customer_name" binding:"required"`
	Address      string               `json:"address"`
	Items        []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

type InvoiceItemRequest struct {
	Name  string           `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price" binding:"required"`
}
