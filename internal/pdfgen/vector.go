package pdfgen

import (
	"bytes"
	"context"
	"fmt"

	"github.com/digitalnexcode/invoiceflow/internal/compose"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/jung-kurt/gofpdf"
)

// Page geometry in points (A4 portrait). Sections sit at fixed vertical
// anchors; only the line item table grows downward.
const (
	marginLeft    = 50.0
	headerTop     = 50.0
	identityTop   = 100.0
	identityRight = 300.0
	descTop       = 170.0
	currencyTop   = 195.0
	tableTop      = 225.0
	rowStep       = 20.0
	pageBreakAt   = 760.0
	totalsGap     = 30.0
	footerY       = 800.0

	logoWidth = 100.0
)

// column x anchors, matching the composed table column order
var columnX = []float64{50, 150, 190, 330, 420, 500}

// VectorRenderer draws the composed document directly onto a PDF page
// canvas. It is the server-side strategy: no bitmap intermediary, crisp
// text, small output.
type VectorRenderer struct {
	logger *logger.Logger
}

func NewVectorRenderer(logger *logger.Logger) *VectorRenderer {
	return &VectorRenderer{logger: logger}
}

// Render implements Renderer
func (r *VectorRenderer) Render(ctx context.Context, doc *compose.ComposedDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	r.drawHeader(pdf, doc)
	r.drawIdentity(pdf, doc)
	r.drawDescription(pdf, doc)
	r.drawCurrency(pdf, doc)
	y := r.drawTable(pdf, doc)
	y = r.drawTotals(pdf, doc, y)
	r.drawNotes(pdf, doc, y)
	r.drawFooter(pdf, doc)

	if pdf.Err() {
		return nil, ierr.WithError(pdf.Error()).
			WithHint("Failed to draw document page").
			Mark(ierr.ErrExportFailure)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to encode document").
			Mark(ierr.ErrExportFailure)
	}

	r.logger.Debugw("rendered vector pdf",
		"filename", doc.Filename,
		"bytes", buf.Len(),
	)
	return buf.Bytes(), nil
}

func (r *VectorRenderer) drawHeader(pdf *gofpdf.Fpdf, doc *compose.ComposedDocument) {
	if doc.Header.Logo != "" {
		raw, imgType, err := decodeLogo(doc.Header.Logo)
		if err != nil {
			// bad logo fails the export; gofpdf latches the error
			pdf.SetError(err)
			return
		}
		opts := gofpdf.ImageOptions{ImageType: imgType}
		pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(raw))
		pdf.ImageOptions("logo", marginLeft, headerTop-5, logoWidth, 0, false, opts, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 25)
	titleX := marginLeft
	if doc.Header.Logo != "" {
		titleX = marginLeft + logoWidth + 20
	}
	pdf.Text(titleX, headerTop+20, doc.Header.Title)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(titleX, headerTop+38, doc.Header.CompanyDetails)
}

func (r *VectorRenderer) drawIdentity(pdf *gofpdf.Fpdf, doc *compose.ComposedDocument) {
	pdf.SetFont("Helvetica", "", 12)
	y := identityTop
	for _, f := range doc.Identity.Left {
		pdf.Text(marginLeft, y, fmt.Sprintf("%s: %s", f.Label, f.Value))
		y += 15
	}
	y = identityTop
	for _, f := range doc.Identity.Right {
		pdf.Text(identityRight, y, fmt.Sprintf("%s: %s", f.Label, f.Value))
		y += 15
	}
}

func (r *VectorRenderer) drawDescription(pdf *gofpdf.Fpdf, doc *compose.ComposedDocument) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(marginLeft, descTop, doc.Description)
}

func (r *VectorRenderer) drawCurrency(pdf *gofpdf.Fpdf, doc *compose.ComposedDocument) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(marginLeft, currencyTop, fmt.Sprintf("Currency: %s", doc.Currency))
}

// drawTable renders column headers and rows in insertion order, breaking
// to a fresh page when a row would run past the bottom anchor. Returns the
// y position after the last row.
func (r *VectorRenderer) drawTable(pdf *gofpdf.Fpdf, doc *compose.ComposedDocument) float64 {
	pdf.SetFont("Helvetica", "B", 10)
	for i, col := range doc.Table.Columns {
		pdf.Text(columnX[i], tableTop, col)
	}

	pdf.SetFont("Helvetica", "", 10)
	y := tableTop + rowStep
	for _, row := range doc.Table.Rows {
		if y > pageBreakAt {
			pdf.AddPage()
			y = tableTop
		}
		cells := []string{
			row.Name,
			row.Quantity,
			row.Description,
			row.UnitPrice,
			row.Amount,
			row.TaxPercent,
		}
		for i, cell := range cells {
			pdf.Text(columnX[i], y, cell)
		}
		y += rowStep
	}
	return y
}

func (r *VectorRenderer) drawTotals(pdf *gofpdf.Fpdf, doc *compose.ComposedDocument, y float64) float64 {
	y += totalsGap
	if y > pageBreakAt {
		pdf.AddPage()
		y = tableTop
	}

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range doc.Totals.Lines {
		pdf.Text(identityRight, y, fmt.Sprintf("%s: %s", line.Label, line.Value))
		y += rowStep
	}
	return y
}

func (r *VectorRenderer) drawNotes(pdf *gofpdf.Fpdf, doc *compose.ComposedDocument, y float64) {
	if doc.Notes == "" {
		return
	}
	y += totalsGap
	if y > pageBreakAt {
		pdf.AddPage()
		y = tableTop
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginLeft, y, "Notes:")
	pdf.Text(marginLeft, y+rowStep, doc.Notes)
}

func (r *VectorRenderer) drawFooter(pdf *gofpdf.Fpdf, doc *compose.ComposedDocument) {
	pdf.SetFont("Helvetica", "", 10)
	pageWidth, _ := pdf.GetPageSize()
	width := pdf.GetStringWidth(doc.Footer)
	pdf.Text((pageWidth-width)/2, footerY, doc.Footer)
}
