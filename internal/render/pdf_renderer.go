package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 15.0
	logoSize   = 35.0
	bodySize   = 12.0
	titleSize  = 20.0
	lineHeight = 8.0
)

// PDFRenderer is the single rendering backend. The logo is read on every
// render so a missing or unreadable asset fails the export instead of
// producing a logo-less document.
type PDFRenderer struct {
	logoPath string
}

func NewPDFRenderer(logoPath string) *PDFRenderer {
	return &PDFRenderer{logoPath: logoPath}
}

func (r *PDFRenderer) Render(data InvoiceData) ([]byte, error) {
	logo, imageType, err := r.loadLogo()
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(logo))
	pdf.ImageOptions("logo", pageMargin, pageMargin, logoSize, logoSize, false, opts, 0, "")
	pdf.SetY(pageMargin + logoSize + 10)

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(0, 12, string(data.Kind), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", bodySize)
	lines := BodyLines(data)
	// The total is set apart from the body by a rule and a bold face.
	for _, line := range lines[:len(lines)-1] {
		pdf.CellFormat(0, lineHeight, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(pageMargin, pdf.GetY(), 210-pageMargin, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", bodySize)
	pdf.CellFormat(0, lineHeight, lines[len(lines)-1], "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) loadLogo() ([]byte, string, error) {
	data, err := os.ReadFile(r.logoPath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrLogoUnavailable, r.logoPath)
	}

	switch strings.ToLower(filepath.Ext(r.logoPath)) {
	case ".png":
		return data, "PNG", nil
	case ".jpg", ".jpeg":
		return data, "JPG", nil
	case ".gif":
		return data, "GIF", nil
	default:
		return nil, "", fmt.Errorf("%w: unsupported image type %q", ErrLogoUnavailable, filepath.Ext(r.logoPath))
	}
}
