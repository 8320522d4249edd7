package document

import (
	"github.com/shopspring/decimal"
)

var months = decimal.NewFromInt(12)

// Totals holds the derived figures for a document. Values are kept at full
// precision; rounding to two decimal places happens only at presentation
// time so rounding error never compounds across items.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
	Monthly  decimal.Decimal `json:"monthly"`
}

// CalculateTotals computes subtotal, grand total and the optional
// twelve-month amortized figure from a line item list. Each line
// contributes independently; there are no cross-item discounts. The
// function is pure: the same input always yields the identical result,
// which keeps PDF re-generation idempotent for an unchanged document.
func CalculateTotals(items []*LineItem, amortize bool) Totals {
	subtotal := decimal.Zero
	total := decimal.Zero

	for _, item := range items {
		if item == nil {
			continue
		}
		amount := item.Amount()
		subtotal = subtotal.Add(amount)
		total = total.Add(amount).Add(item.Tax())
	}

	monthly := decimal.Zero
	if amortize {
		monthly = total.Div(months)
	}

	return Totals{
		Subtotal: subtotal,
		Total:    total,
		Monthly:  monthly,
	}
}
