package pdfgen

import (
	"bytes"
	"context"
	"image"
	"image/png"

	"github.com/digitalnexcode/invoiceflow/internal/compose"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// A4 portrait in points
const (
	pageWidthPt  = 595.28
	pageHeightPt = 841.89

	// snapshot bitmaps are normalized to this width before embedding,
	// twice the page width for a sharper result
	snapshotWidthPx = 1190
)

// SnapshotSource supplies a bitmap of the live visual render of a
// composed document. The interactive preview is the usual source; when no
// preview is mounted the raster strategy cannot run.
type SnapshotSource interface {
	Snapshot(ctx context.Context, doc *compose.ComposedDocument) (image.Image, error)
}

// RasterRenderer embeds a snapshot of the already-rendered document as a
// single full-page image. Used when the caller wants the export to be
// visually byte-identical to what is on screen rather than a separately
// laid-out document.
type RasterRenderer struct {
	source SnapshotSource
	logger *logger.Logger
}

func NewRasterRenderer(source SnapshotSource, logger *logger.Logger) *RasterRenderer {
	return &RasterRenderer{source: source, logger: logger}
}

// Render implements Renderer
func (r *RasterRenderer) Render(ctx context.Context, doc *compose.ComposedDocument) ([]byte, error) {
	if r.source == nil {
		return nil, ierr.NewError("no preview element available").
			WithHint("The document preview must be rendered before a raster export").
			Mark(ierr.ErrPreconditionNotMet)
	}

	snapshot, err := r.source.Snapshot(ctx, doc)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ierr.NewError("preview snapshot is empty").
			WithHint("The document preview must be rendered before a raster export").
			Mark(ierr.ErrPreconditionNotMet)
	}

	resized := imaging.Resize(snapshot, snapshotWidthPx, 0, imaging.Lanczos)

	var imgBuf bytes.Buffer
	if err := png.Encode(&imgBuf, resized); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to encode preview snapshot").
			Mark(ierr.ErrExportFailure)
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("snapshot", opts, &imgBuf)
	pdf.ImageOptions("snapshot", 0, 0, pageWidthPt, pageHeightPt, false, opts, 0, "")

	if pdf.Err() {
		return nil, ierr.WithError(pdf.Error()).
			WithHint("Failed to embed preview snapshot").
			Mark(ierr.ErrExportFailure)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to encode document").
			Mark(ierr.ErrExportFailure)
	}

	r.logger.Debugw("rendered raster pdf",
		"filename", doc.Filename,
		"bytes", buf.Len(),
	)
	return buf.Bytes(), nil
}
