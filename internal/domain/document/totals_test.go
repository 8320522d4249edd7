package document

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(qty, price, tax string) *LineItem {
	return &LineItem{
		Quantity:   decimal.RequireFromString(qty),
		UnitPrice:  decimal.RequireFromString(price),
		TaxPercent: decimal.RequireFromString(tax),
	}
}

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []*LineItem
		amortize     bool
		wantSubtotal string
		wantTotal    string
		wantMonthly  string
	}{
		{
			name: "mixed tax rates",
			items: []*LineItem{
				item("2", "100", "10"),
				item("1", "50", "0"),
			},
			wantSubtotal: "250",
			wantTotal:    "270",
			wantMonthly:  "0",
		},
		{
			name:         "empty list",
			items:        nil,
			wantSubtotal: "0",
			wantTotal:    "0",
			wantMonthly:  "0",
		},
		{
			name: "monthly amortization",
			items: []*LineItem{
				item("1", "1200", "0"),
			},
			amortize:     true,
			wantSubtotal: "1200",
			wantTotal:    "1200",
			wantMonthly:  "100",
		},
		{
			name: "zero quantity contributes nothing",
			items: []*LineItem{
				item("0", "999", "15"),
				item("3", "10", "0"),
			},
			wantSubtotal: "30",
			wantTotal:    "30",
			wantMonthly:  "0",
		},
		{
			name: "nil items are skipped",
			items: []*LineItem{
				nil,
				item("1", "10", "0"),
			},
			wantSubtotal: "10",
			wantTotal:    "10",
			wantMonthly:  "0",
		},
		{
			name: "fractional quantities keep full precision",
			items: []*LineItem{
				item("2.5", "19.99", "15"),
			},
			wantSubtotal: "49.975",
			wantTotal:    "57.47125",
			wantMonthly:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(tt.items, tt.amortize)
			assert.True(t, got.Subtotal.Equal(decimal.RequireFromString(tt.wantSubtotal)),
				"subtotal: got %s want %s", got.Subtotal, tt.wantSubtotal)
			assert.True(t, got.Total.Equal(decimal.RequireFromString(tt.wantTotal)),
				"total: got %s want %s", got.Total, tt.wantTotal)
			assert.True(t, got.Monthly.Equal(decimal.RequireFromString(tt.wantMonthly)),
				"monthly: got %s want %s", got.Monthly, tt.wantMonthly)
		})
	}
}

func TestCalculateTotalsIsDeterministic(t *testing.T) {
	items := []*LineItem{
		item("3", "33.33", "14.5"),
		item("7", "0.07", "15"),
	}

	first := CalculateTotals(items, true)
	for i := 0; i < 10; i++ {
		again := CalculateTotals(items, true)
		assert.True(t, first.Subtotal.Equal(again.Subtotal))
		assert.True(t, first.Total.Equal(again.Total))
		assert.True(t, first.Monthly.Equal(again.Monthly))
	}
}

func TestCalculateTotalsTotalNeverBelowSubtotal(t *testing.T) {
	items := []*LineItem{
		item("2", "100", "10"),
		item("5", "9.99", "0"),
		item("1", "0.01", "15"),
	}

	got := CalculateTotals(items, false)
	assert.True(t, got.Total.GreaterThanOrEqual(got.Subtotal))
}

func TestLineItemAmountAndTax(t *testing.T) {
	li := item("2", "100", "15")

	assert.True(t, li.Amount().Equal(decimal.NewFromInt(200)))
	assert.True(t, li.Tax().Equal(decimal.NewFromInt(30)))
}

func TestLineItemValidateRejectsNegatives(t *testing.T) {
	li := item("1", "10", "0")
	assert.NoError(t, li.Validate())

	li.Quantity = decimal.NewFromInt(-1)
	assert.Error(t, li.Validate())

	li = item("1", "-10", "0")
	assert.Error(t, li.Validate())

	li = item("1", "10", "-5")
	assert.Error(t, li.Validate())
}
