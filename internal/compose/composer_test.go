package compose

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/digitalnexcode/invoiceflow/internal/domain/document"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocument() *document.Document {
	return &document.Document{
		ID:             "inv_test",
		Kind:           types.DocumentKindInvoice,
		Number:         "INV-123456-007",
		Status:         types.DocumentStatusSent,
		ClientName:     "Acme Ltd",
		ClientEmail:    "billing@acme.test",
		ClientPhone:    "+27 11 000 0000",
		ClientCompany:  "Acme",
		CompanyDetails: "DigitalNexCode, Johannesburg",
		Description:    "Monthly retainer",
		Currency:       "ZAR",
		IssueDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Notes:          "Payable within 30 days",
		ShowMonthly:    true,
		LineItems: []*document.LineItem{
			{
				Name:       "Hosting",
				Quantity:   decimal.NewFromInt(2),
				UnitPrice:  decimal.NewFromInt(100),
				TaxPercent: decimal.NewFromInt(10),
			},
			{
				Name:       "Support",
				Quantity:   decimal.NewFromInt(1),
				UnitPrice:  decimal.NewFromInt(50),
				TaxPercent: decimal.Zero,
			},
		},
	}
}

func TestSectionOrderIsFixed(t *testing.T) {
	want := []string{
		"header", "identity", "description", "currency",
		"items", "totals", "notes", "footer",
	}
	assert.Equal(t, want, SectionOrder())
}

func TestComposeFullDocument(t *testing.T) {
	doc := fullDocument()
	composed := Compose(doc)

	assert.Equal(t, "invoice-INV-123456-007.pdf", composed.Filename)
	assert.Equal(t, "Invoice", composed.Header.Title)
	assert.Equal(t, "DigitalNexCode, Johannesburg", composed.Header.CompanyDetails)
	assert.Equal(t, "Monthly retainer", composed.Description)
	assert.Equal(t, "ZAR", composed.Currency)
	assert.Equal(t, FooterBranding, composed.Footer)

	require.Len(t, composed.Identity.Left, 4)
	assert.Equal(t, "Invoice Number", composed.Identity.Left[0].Label)
	assert.Equal(t, "INV-123456-007", composed.Identity.Left[0].Value)
	assert.Equal(t, "2025-03-01", composed.Identity.Left[1].Value)
	assert.Equal(t, "Due Date", composed.Identity.Left[2].Label)
	assert.Equal(t, "sent", composed.Identity.Left[3].Value)

	require.Len(t, composed.Identity.Right, 4)
	assert.Equal(t, "Acme Ltd", composed.Identity.Right[0].Value)

	require.Len(t, composed.Table.Rows, 2)
	assert.Equal(t, "Hosting", composed.Table.Rows[0].Name)
	assert.Equal(t, "100.00", composed.Table.Rows[0].UnitPrice)
	assert.Equal(t, "200.00", composed.Table.Rows[0].Amount)
	assert.Equal(t, "10%", composed.Table.Rows[0].TaxPercent)

	require.Len(t, composed.Totals.Lines, 3)
	assert.Equal(t, "ZAR 250.00", composed.Totals.Lines[0].Value)
	assert.Equal(t, "ZAR 270.00", composed.Totals.Lines[1].Value)
	assert.Equal(t, "Monthly", composed.Totals.Lines[2].Label)
	assert.Equal(t, "ZAR 22.50", composed.Totals.Lines[2].Value)
}

func TestComposeEmptyDocumentUsesPlaceholders(t *testing.T) {
	doc := &document.Document{Kind: types.DocumentKindQuote}
	composed := Compose(doc)

	assert.Equal(t, "Quote", composed.Header.Title)
	assert.Equal(t, PlaceholderCompanyDetails, composed.Header.CompanyDetails)
	assert.Equal(t, PlaceholderDescription, composed.Description)
	assert.Equal(t, PlaceholderCurrency, composed.Currency)

	assert.Equal(t, PlaceholderDate, composed.Identity.Left[1].Value)
	assert.Equal(t, "Expiry Date", composed.Identity.Left[2].Label)
	assert.Equal(t, PlaceholderStatus, composed.Identity.Left[3].Value)
	assert.Equal(t, PlaceholderClientName, composed.Identity.Right[0].Value)
	assert.Equal(t, PlaceholderNotAvailable, composed.Identity.Right[1].Value)

	// Layout never collapses: table columns and both totals lines remain
	assert.Len(t, composed.Table.Columns, 6)
	assert.Empty(t, composed.Table.Rows)
	require.Len(t, composed.Totals.Lines, 2)
	assert.Equal(t, "ZAR 0.00", composed.Totals.Lines[0].Value)
	assert.Equal(t, FooterBranding, composed.Footer)
}

func TestComposeCarriesIssuerDetails(t *testing.T) {
	doc := fullDocument()
	composed := Compose(doc)

	// the issuer block survives serialization of the full layout
	data, err := json.Marshal(composed)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DigitalNexCode, Johannesburg")
}

func TestComposeMonthlyLineOnlyWhenRequested(t *testing.T) {
	doc := fullDocument()
	doc.ShowMonthly = false
	composed := Compose(doc)

	require.Len(t, composed.Totals.Lines, 2)
	for _, line := range composed.Totals.Lines {
		assert.NotEqual(t, "Monthly", line.Label)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	doc := fullDocument()

	first := Compose(doc)
	second := Compose(doc)
	assert.Equal(t, first, second)
}

func TestComposeCurrencyInTableHeaders(t *testing.T) {
	doc := fullDocument()
	doc.Currency = "USD"
	composed := Compose(doc)

	assert.Equal(t, "Unit Price (USD)", composed.Table.Columns[3])
	assert.Equal(t, "Amount (USD)", composed.Table.Columns[4])
}
