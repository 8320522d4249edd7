package pdfgen

import (
	"encoding/base64"
	"strings"

	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/h2non/filetype"
)

// decodeLogo turns a logo reference into raw image bytes plus the image
// type gofpdf expects ("png" or "jpg"). Logos arrive as base64 data URIs
// persisted with the document. Unsupported or undecodable images are an
// export failure, not a validation failure: the document itself is fine.
func decodeLogo(logo string) ([]byte, string, error) {
	payload := logo
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", ierr.WithError(err).
			WithHint("Logo image could not be decoded").
			Mark(ierr.ErrExportFailure)
	}

	switch {
	case filetype.IsType(raw, filetype.GetType("png")):
		return raw, "png", nil
	case filetype.IsType(raw, filetype.GetType("jpg")):
		return raw, "jpg", nil
	}

	return nil, "", ierr.NewError("unsupported logo image type").
		WithHint("Logo must be a PNG or JPEG image").
		Mark(ierr.ErrExportFailure)
}
