package pdfgen

import (
	"context"

	"github.com/digitalnexcode/invoiceflow/internal/compose"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/samber/lo"
)

// Renderer turns a composed document into PDF bytes. Implementations must
// not re-derive layout from raw metadata; the composed document is the
// only input. Switching renderers changes the rendering technique, never
// the document content.
type Renderer interface {
	Render(ctx context.Context, doc *compose.ComposedDocument) ([]byte, error)
}

// Strategy selects the rendering technique for an export call
type Strategy string

const (
	// StrategyVector draws text and images directly onto the page canvas
	StrategyVector Strategy = "vector"
	// StrategyRaster embeds a bitmap snapshot of the live visual render
	// as a single full-page image
	StrategyRaster Strategy = "raster"
)

func (s Strategy) String() string {
	return string(s)
}

func (s Strategy) Validate() error {
	allowed := []Strategy{StrategyVector, StrategyRaster}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid export strategy").
			WithHint("Please provide a valid export strategy").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
