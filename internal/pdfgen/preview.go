package pdfgen

import (
	"context"
	"fmt"
	"image"

	"github.com/digitalnexcode/invoiceflow/internal/compose"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Canvas geometry in pixels, A4 portrait at 150 dpi
const (
	previewWidthPx  = 1240
	previewHeightPx = 1754
	previewMargin   = 100.0
	previewRowStep  = 28.0
)

var previewColumnX = []float64{100, 320, 420, 700, 880, 1060}

// PreviewRasterizer draws the composed document onto an in-memory canvas.
// It stands in for the interactive on-screen preview and doubles as the
// SnapshotSource for the raster export strategy. Section order and
// placeholder policy come straight from the composed document; nothing is
// re-derived here.
type PreviewRasterizer struct{}

func NewPreviewRasterizer() *PreviewRasterizer {
	return &PreviewRasterizer{}
}

// Snapshot implements SnapshotSource
func (p *PreviewRasterizer) Snapshot(ctx context.Context, doc *compose.ComposedDocument) (image.Image, error) {
	dc := gg.NewContext(previewWidthPx, previewHeightPx)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(basicfont.Face7x13)

	y := previewMargin

	// header with issuer details
	dc.DrawString(doc.Header.Title, previewMargin, y)
	y += previewRowStep
	dc.DrawString(doc.Header.CompanyDetails, previewMargin, y)
	y += 2 * previewRowStep

	// identity block, two columns
	identityTop := y
	for _, f := range doc.Identity.Left {
		dc.DrawString(fmt.Sprintf("%s: %s", f.Label, f.Value), previewMargin, y)
		y += previewRowStep
	}
	y = identityTop
	for _, f := range doc.Identity.Right {
		dc.DrawString(fmt.Sprintf("%s: %s", f.Label, f.Value), previewWidthPx/2, y)
		y += previewRowStep
	}
	y += previewRowStep

	// description and currency
	dc.DrawString(fmt.Sprintf("Description: %s", doc.Description), previewMargin, y)
	y += previewRowStep
	dc.DrawString(fmt.Sprintf("Currency: %s", doc.Currency), previewMargin, y)
	y += 2 * previewRowStep

	// line item table
	for i, col := range doc.Table.Columns {
		dc.DrawString(col, previewColumnX[i], y)
	}
	y += previewRowStep
	for _, row := range doc.Table.Rows {
		cells := []string{
			row.Name,
			row.Quantity,
			row.Description,
			row.UnitPrice,
			row.Amount,
			row.TaxPercent,
		}
		for i, cell := range cells {
			dc.DrawString(cell, previewColumnX[i], y)
		}
		y += previewRowStep
	}
	y += previewRowStep

	// totals, right aligned
	for _, line := range doc.Totals.Lines {
		dc.DrawString(fmt.Sprintf("%s: %s", line.Label, line.Value), previewWidthPx/2, y)
		y += previewRowStep
	}

	// notes
	if doc.Notes != "" {
		y += previewRowStep
		dc.DrawString("Notes:", previewMargin, y)
		y += previewRowStep
		dc.DrawString(doc.Notes, previewMargin, y)
	}

	// footer branding
	dc.DrawStringAnchored(doc.Footer, previewWidthPx/2, previewHeightPx-previewMargin, 0.5, 0)

	return dc.Image(), nil
}
