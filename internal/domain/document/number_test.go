package document

import (
	"regexp"
	"testing"

	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestGenerateNumberFormat(t *testing.T) {
	invoicePattern := regexp.MustCompile(`^INV-\d{1,6}-\d{3}$`)
	quotePattern := regexp.MustCompile(`^QUO-\d{1,6}-\d{3}$`)

	for i := 0; i < 50; i++ {
		assert.Regexp(t, invoicePattern, GenerateNumber(types.DocumentKindInvoice))
		assert.Regexp(t, quotePattern, GenerateNumber(types.DocumentKindQuote))
	}
}

func TestSuffixedNumber(t *testing.T) {
	assert.Equal(t, "INV-123456-007-1", SuffixedNumber("INV-123456-007", 1))
	assert.Equal(t, "QUO-123456-007-12", SuffixedNumber("QUO-123456-007", 12))
}

func TestFilename(t *testing.T) {
	doc := &Document{Kind: types.DocumentKindInvoice, Number: "INV-123456-007"}
	assert.Equal(t, "invoice-INV-123456-007.pdf", doc.Filename())

	doc = &Document{Kind: types.DocumentKindQuote, Number: "QUO-654321-042"}
	assert.Equal(t, "quote-QUO-654321-042.pdf", doc.Filename())
}
