package service

import (
	"bytes"
	"context"
	"image/png"
	"strings"

	"github.com/digitalnexcode/invoiceflow/internal/compose"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/pdfgen"
)

// ExportResult is a finished artifact ready to stream to the caller
type ExportResult struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ExportService turns saved documents into downloadable artifacts. The
// export pipeline is compose then render; saving a document and exporting
// it succeed or fail independently.
type ExportService interface {
	Export(ctx context.Context, id string, strategy pdfgen.Strategy) (*ExportResult, error)
	Preview(ctx context.Context, id string) (*ExportResult, error)
}

type exportService struct {
	ServiceParams
	preview *pdfgen.PreviewRasterizer
}

func NewExportService(params ServiceParams) ExportService {
	return &exportService{
		ServiceParams: params,
		preview:       pdfgen.NewPreviewRasterizer(),
	}
}

func (s *exportService) Export(ctx context.Context, id string, strategy pdfgen.Strategy) (*ExportResult, error) {
	if err := strategy.Validate(); err != nil {
		return nil, err
	}

	renderer, ok := s.Renderers[strategy]
	if !ok {
		return nil, ierr.NewError("no renderer for strategy").
			WithHintf("The %s strategy is not available", strategy).
			Mark(ierr.ErrPreconditionNotMet)
	}

	composed, err := s.composeDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.Config.Export.Timeout)
	defer cancel()

	data, err := renderer.Render(ctx, composed)
	if err != nil {
		s.Logger.Errorw("export failed",
			"document_id", id,
			"strategy", strategy,
			"error", err,
		)
		return nil, err
	}

	s.Logger.Infow("exported document",
		"document_id", id,
		"strategy", strategy,
		"bytes", len(data),
	)

	return &ExportResult{
		Data:        data,
		Filename:    composed.Filename,
		ContentType: "application/pdf",
	}, nil
}

// Preview renders the composed document as a PNG snapshot of the page
func (s *exportService) Preview(ctx context.Context, id string) (*ExportResult, error) {
	composed, err := s.composeDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	img, err := s.preview.Snapshot(ctx, composed)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to encode the preview image").
			Mark(ierr.ErrExportFailure)
	}

	return &ExportResult{
		Data:        buf.Bytes(),
		Filename:    strings.TrimSuffix(composed.Filename, ".pdf") + ".png",
		ContentType: "image/png",
	}, nil
}

func (s *exportService) composeDocument(ctx context.Context, id string) (*compose.ComposedDocument, error) {
	doc, err := s.DocumentRepo.Get(ctx, id)
	if err != nil {
		return nil, toNotFoundError(err, id)
	}
	return compose.Compose(doc), nil
}
