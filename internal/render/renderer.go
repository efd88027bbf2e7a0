package render

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind selects the document variant; its value is also the title printed
// in the header block.
type Kind string

const (
	KindInvoice        Kind = "Invoice"
	KindBookingSummary Kind = "Booking Summary"
)

// LineItem is one rented-item row of the document.
type LineItem struct {
	Name  string
	Price decimal.Decimal
	Unit  int
}

// InvoiceData is the single data model both export paths feed the
// renderer. Total is supplied by the caller; the renderer formats, it
// does not compute.
type InvoiceData struct {
	Kind         Kind
	CustomerName string
	Address      string
	Items        []LineItem
	Total        decimal.Decimal
}

// DocumentRenderer turns InvoiceData into a downloadable document.
type DocumentRenderer interface {
	Render(data InvoiceData) ([]byte, error)
}

// ErrLogoUnavailable marks a failed logo load. The export fails loudly;
// a document without the logo is never produced.
var ErrLogoUnavailable = errors.New("logo asset could not be loaded")

// currency is the fixed symbol prefix. No locale-aware formatting.
const currency = "$"

func money(d decimal.Decimal) string {
	return currency + d.StringFixed(2)
}

// ItemLine renders one item in the variant's fixed format: the invoice
// shows name and price, the booking summary adds the quantity.
func ItemLine(kind Kind, item LineItem) string {
	if kind == KindBookingSummary {
		return fmt.Sprintf("%s - %s x %d", item.Name, money(item.Price), item.Unit)
	}
	return fmt.Sprintf("%s - %s", item.Name, money(item.Price))
}

// TotalLine is the single aggregate total at the foot of the document.
func TotalLine(kind Kind, total decimal.Decimal) string {
	if kind == KindBookingSummary {
		return "Total Fee: " + money(total)
	}
	return "Total Price: " + money(total)
}

// BodyLines lays out the whole text body in order: customer block (the
// address line disappears entirely when blank), one line per item, then
// the total. Keeping this separate from drawing makes the layout contract
// checkable without parsing PDF output.
func BodyLines(data InvoiceData) []string {
	lines := []string{"Customer Name: " + data.CustomerName}
	if data.Address != "" {
		lines = append(lines, "Address: "+data.Address)
	}
	for _, item := range data.Items {
		lines = append(lines, ItemLine(data.Kind, item))
	}
	return append(lines, TotalLine(data.Kind, data.Total))
}

// InvoiceFilename is the fixed download name for ad-hoc invoices.
func InvoiceFilename() string { return "invoice.pdf" }

// SummaryFilename is the per-booking download name.
func SummaryFilename(bookingID int64) string {
	return fmt.Sprintf("booking_summary_%d.pdf", bookingID)
}
