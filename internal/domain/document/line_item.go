package document

import (
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineItem represents a single billable line in an invoice or quote
type LineItem struct {
	ID          string          `db:"id" json:"id"`
	DocumentID  string          `db:"document_id" json:"document_id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description,omitempty"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	TaxPercent  decimal.Decimal `db:"tax_percent" json:"tax_percent"`
	types.BaseModel
}

// Amount returns the pre-tax line total, quantity * unit price
func (i *LineItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Tax returns the line tax, amount * tax percent / 100
func (i *LineItem) Tax() decimal.Decimal {
	return i.Amount().Mul(i.TaxPercent).Div(hundred)
}

// Validate validates the line item
func (i *LineItem) Validate() error {
	if i.Quantity.IsNegative() {
		return NewValidationError("quantity", "must be non negative")
	}

	if i.UnitPrice.IsNegative() {
		return NewValidationError("unit_price", "must be non negative")
	}

	if i.TaxPercent.IsNegative() {
		return NewValidationError("tax_percent", "must be non negative")
	}

	return nil
}
