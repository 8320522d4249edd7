package compose

import (
	"fmt"
	"time"

	"github.com/digitalnexcode/invoiceflow/internal/domain/document"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// Neutral placeholders rendered when an optional field is absent, so the
// fixed layout never visually collapses.
const (
	PlaceholderClientName     = "Client Name"
	PlaceholderCompanyDetails = "Your Company Details"
	PlaceholderDescription    = "No description provided"
	PlaceholderDate           = "YYYY-MM-DD"
	PlaceholderStatus         = "Draft"
	PlaceholderCurrency       = "ZAR"
	PlaceholderNotAvailable   = "N/A"

	// FooterBranding is the fixed branding line closing every document
	FooterBranding = "Created by DigitalNexCode"

	dateLayout = "2006-01-02"
)

// ComposedDocument is the single structured, paginated representation of
// an invoice or quote. Every exporter (vector PDF, raster PDF) and the
// on-screen preview consume this exact shape; none of them re-derives
// layout from raw metadata.
type ComposedDocument struct {
	Kind     types.DocumentKind `json:"kind"`
	Filename string             `json:"filename"`

	Header      Header      `json:"header"`
	Identity    Identity    `json:"identity"`
	Description string      `json:"description"`
	Currency    string      `json:"currency"`
	Table       Table       `json:"table"`
	Totals      TotalsBlock `json:"totals"`
	Notes       string      `json:"notes,omitempty"`
	Footer      string      `json:"footer"`
}

// Header carries the optional logo reference, the document kind title
// and the issuer's company details block.
type Header struct {
	Logo           string `json:"logo,omitempty"` // data URI or URL, empty when absent
	Title          string `json:"title"`
	CompanyDetails string `json:"company_details"`
}

// Field is one labelled value in the identity or totals block
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Identity is the two-column identity block: document identity on the
// left, counterparty details on the right.
type Identity struct {
	Left  []Field `json:"left"`
	Right []Field `json:"right"`
}

// Table is the line item table. Row order is input order; rows are never
// re-sorted. Monetary cells are formatted to two decimal places here and
// nowhere earlier.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Row is one rendered line item
type Row struct {
	Name        string `json:"name"`
	Quantity    string `json:"quantity"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
	Amount      string `json:"amount"` // pre-tax, quantity * unit price
	TaxPercent  string `json:"tax_percent"`
}

// TotalsBlock is the right-aligned totals section. Monthly is present
// only when the amortization flag is set on the document.
type TotalsBlock struct {
	Lines []Field `json:"lines"`
}

// SectionOrder enumerates the fixed section sequence of every rendered
// document. Exporters iterate sections in exactly this order.
func SectionOrder() []string {
	return []string{
		"header",
		"identity",
		"description",
		"currency",
		"items",
		"totals",
		"notes",
		"footer",
	}
}

// Compose turns a document plus its recomputed totals into the shared
// layout representation. It is pure: composing the same document twice
// yields identical output, which keeps exports idempotent.
func Compose(doc *document.Document) *ComposedDocument {
	totals := doc.Totals()
	currency := orPlaceholder(doc.Currency, PlaceholderCurrency)

	totalLines := []Field{
		{Label: "Subtotal", Value: money(currency, totals.Subtotal)},
		{Label: "Total (inc. tax)", Value: money(currency, totals.Total)},
	}
	if doc.ShowMonthly {
		totalLines = append(totalLines, Field{Label: "Monthly", Value: money(currency, totals.Monthly)})
	}

	return &ComposedDocument{
		Kind:     doc.Kind,
		Filename: doc.Filename(),
		Header: Header{
			Logo:           doc.Logo,
			Title:          doc.Kind.Title(),
			CompanyDetails: orPlaceholder(doc.CompanyDetails, PlaceholderCompanyDetails),
		},
		Identity: Identity{
			Left: []Field{
				{Label: doc.Kind.Title() + " Number", Value: orPlaceholder(doc.Number, doc.Kind.NumberPrefix()+"-0001")},
				{Label: "Issue Date", Value: formatDate(doc.IssueDate)},
				{Label: doc.Kind.DueDateLabel(), Value: formatDate(doc.DueDate)},
				{Label: "Status", Value: orPlaceholder(doc.Status.String(), PlaceholderStatus)},
			},
			Right: []Field{
				{Label: "Client", Value: orPlaceholder(doc.ClientName, PlaceholderClientName)},
				{Label: "Email", Value: orPlaceholder(doc.ClientEmail, PlaceholderNotAvailable)},
				{Label: "Phone", Value: orPlaceholder(doc.ClientPhone, PlaceholderNotAvailable)},
				{Label: "Company", Value: orPlaceholder(doc.ClientCompany, PlaceholderNotAvailable)},
			},
		},
		Description: orPlaceholder(doc.Description, PlaceholderDescription),
		Currency:    currency,
		Table:       composeTable(doc.LineItems, currency),
		Totals:      TotalsBlock{Lines: totalLines},
		Notes:       doc.Notes,
		Footer:      FooterBranding,
	}
}

func composeTable(items []*document.LineItem, currency string) Table {
	table := Table{
		Columns: []string{
			"Name",
			"Qty",
			"Description",
			fmt.Sprintf("Unit Price (%s)", currency),
			fmt.Sprintf("Amount (%s)", currency),
			"Tax (%)",
		},
		Rows: make([]Row, 0, len(items)),
	}

	for _, item := range items {
		if item == nil {
			continue
		}
		table.Rows = append(table.Rows, Row{
			Name:        item.Name,
			Quantity:    item.Quantity.String(),
			Description: item.Description,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Amount:      item.Amount().StringFixed(2),
			TaxPercent:  item.TaxPercent.String() + "%",
		})
	}

	return table
}

func money(currency string, v decimal.Decimal) string {
	return fmt.Sprintf("%s %s", currency, v.StringFixed(2))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return PlaceholderDate
	}
	return t.Format(dateLayout)
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
