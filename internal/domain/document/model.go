package document

import (
	"time"

	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// Document represents an invoice or a quote: header metadata plus an
// ordered line item collection the document exclusively owns. Line items
// have no existence outside their parent; an update replaces the whole set.
type Document struct {
	ID     string               `db:"id" json:"id"`
	Kind   types.DocumentKind   `db:"kind" json:"kind"`
	Number string               `db:"number" json:"number"`
	Status types.DocumentStatus `db:"doc_status" json:"doc_status"`

	// Counterparty
	ClientName    string `db:"client_name" json:"client_name"`
	ClientEmail   string `db:"client_email" json:"client_email"`
	ClientPhone   string `db:"client_phone" json:"client_phone,omitempty"`
	ClientCompany string `db:"client_company" json:"client_company,omitempty"`

	// Issuer
	CompanyDetails string `db:"company_details" json:"company_details,omitempty"`
	Logo           string `db:"logo" json:"logo,omitempty"` // data URI or URL

	Description string          `db:"description" json:"description,omitempty"`
	Currency    string          `db:"currency" json:"currency"`
	IssueDate   time.Time       `db:"issue_date" json:"issue_date"`
	DueDate     time.Time       `db:"due_date" json:"due_date"` // expiry date for quotes
	Notes       string          `db:"notes" json:"notes,omitempty"`
	ShowMonthly bool            `db:"show_monthly" json:"show_monthly"`
	Amount      decimal.Decimal `db:"amount" json:"amount"` // persisted grand total

	LineItems []*LineItem `db:"-" json:"line_items,omitempty"`
	types.BaseModel
}

// Validate checks the required metadata before composition starts.
// Malformed line item numbers are never an error here; they were already
// coerced to zero at the boundary.
func (d *Document) Validate() error {
	if err := d.Kind.Validate(); err != nil {
		return err
	}

	if d.ClientName == "" {
		return NewValidationError("client_name", "must not be empty")
	}

	if d.ClientEmail == "" {
		return NewValidationError("client_email", "must not be empty")
	}

	if d.Number == "" {
		return NewValidationError("number", "must not be empty")
	}

	if d.Currency == "" {
		return NewValidationError("currency", "must not be empty")
	}

	if err := d.Status.ValidateFor(d.Kind); err != nil {
		return err
	}

	for _, item := range d.LineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Totals recomputes the derived figures from the current line item set
func (d *Document) Totals() Totals {
	return CalculateTotals(d.LineItems, d.ShowMonthly)
}

// Filename returns the suggested artifact name, ex invoice-INV-123456-007.pdf
func (d *Document) Filename() string {
	return d.Kind.String() + "-" + d.Number + ".pdf"
}
