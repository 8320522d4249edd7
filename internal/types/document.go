package types

import (
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/samber/lo"
)

// DocumentKind distinguishes invoices from quotes. Both share the same
// line item shape, the same totals math and the same rendered layout;
// only the title, the status set and the date labels differ.
type DocumentKind string

const (
	DocumentKindInvoice DocumentKind = "invoice"
	DocumentKindQuote   DocumentKind = "quote"
)

func (k DocumentKind) String() string {
	return string(k)
}

// Title returns the document heading rendered at the top of the page
func (k DocumentKind) Title() string {
	switch k {
	case DocumentKindInvoice:
		return "Invoice"
	case DocumentKindQuote:
		return "Quote"
	}
	return ""
}

// NumberPrefix returns the human document number prefix, ex INV-123456-007
func (k DocumentKind) NumberPrefix() string {
	switch k {
	case DocumentKindInvoice:
		return "INV"
	case DocumentKindQuote:
		return "QUO"
	}
	return "DOC"
}

// DueDateLabel returns the label of the second date field. Invoices carry
// a due date, quotes an expiry date.
func (k DocumentKind) DueDateLabel() string {
	if k == DocumentKindQuote {
		return "Expiry Date"
	}
	return "Due Date"
}

func (k DocumentKind) Validate() error {
	allowed := []DocumentKind{
		DocumentKindInvoice,
		DocumentKindQuote,
	}
	if !lo.Contains(allowed, k) {
		return ierr.NewError("invalid document kind").
			WithHint("Please provide a valid document kind").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DocumentStatus represents the current state of an invoice or quote in
// its lifecycle. Invoices move draft -> sent -> paid, quotes move
// draft -> sent -> accepted|rejected.
type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "draft"
	DocumentStatusSent     DocumentStatus = "sent"
	DocumentStatusPaid     DocumentStatus = "paid"
	DocumentStatusAccepted DocumentStatus = "accepted"
	DocumentStatusRejected DocumentStatus = "rejected"
)

func (s DocumentStatus) String() string {
	return string(s)
}

// ValidateFor checks the status against the status set of the given kind
func (s DocumentStatus) ValidateFor(kind DocumentKind) error {
	allowed := []DocumentStatus{
		DocumentStatusDraft,
		DocumentStatusSent,
		DocumentStatusPaid,
	}
	if kind == DocumentKindQuote {
		allowed = []DocumentStatus{
			DocumentStatusDraft,
			DocumentStatusSent,
			DocumentStatusAccepted,
			DocumentStatusRejected,
		}
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid document status").
			WithHintf("Please provide a valid %s status", kind).
			WithReportableDetails(map[string]any{
				"allowed": allowed,
				"kind":    kind,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
