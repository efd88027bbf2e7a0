package invoice

import (
	"context"

	"github.com/shopspring/decimal"

	"kitchenadmin/internal/render"
)

// Document is a finished export ready to stream: bytes plus the fixed
// download filename.
type Document struct {
	Filename string
	Content  []byte
}

type Service struct {
	api      BookingReader
	renderer render.DocumentRenderer
}

func NewService(api BookingReader, renderer render.DocumentRenderer) *Service {
	return &Service{api: api, renderer: renderer}
}

// InvoicePDF renders the ad-hoc invoice. The total is derived here, the
// only place the gateway computes a document total on its own: the sum of
// the entered prices, exact decimals.
func (s *Service) InvoicePDF(req InvoiceRequest) (*Document, error) {
	items := make([]render.LineItem, 0, len(req.Items))
	total := decimal.Zero
	for _, it := range req.Items {
		items = append(items, render.LineItem{Name: it.Name, Price: *it.Price, Unit: 1})
		total = total.Add(*it.Price)
	}

	content, err := s.renderer.Render(render.InvoiceData{
		Kind:         render.KindInvoice,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Items:        items,
		Total:        total,
	})
	if err != nil {
		return nil, err
	}
	return &Document{Filename: render.InvoiceFilename(), Content: content}, nil
}

// BookingSummaryPDF fetches the booking and renders its summary. The
// printed total is the API's total_fee, authoritative and never re-derived.
func (s *Service) BookingSummaryPDF(ctx context.Context, token string, id int64) (*Document, error) {
	b, err := s.api.GetBooking(ctx, token, id)
	if err != nil {
		return nil, err
	}

	items := make([]render.LineItem, 0, len(b.RentedItems))
	for _, it := range b.RentedItems {
		items = append(items, render.LineItem{Name: it.Name, Price: it.Price, Unit: it.Unit})
	}

	content, err := s.renderer.Render(render.InvoiceData{
		Kind:         render.KindBookingSummary,
		CustomerName: b.ClientName,
		Address:      b.Address,
		Items:        items,
		Total:        b.TotalFee,
	})
	if err != nil {
		return nil, err
	}
	return &Document{Filename: render.SummaryFilename(b.ID), Content: content}, nil
}
