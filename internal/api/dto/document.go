package dto

import (
	"context"
	"strconv"
	"time"

	"github.com/digitalnexcode/invoiceflow/internal/domain/document"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/validator"

	"github.com/digitalnexcode/invoiceflow/internal/types"
)

const dateLayout = "2006-01-02"

// LineItemRequest carries one billable line. The numeric fields are
// flexible decimals: malformed input degrades to zero instead of failing
// the request, and negatives are clamped to zero on conversion.
type LineItemRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Quantity    types.FlexDecimal `json:"quantity"`
	UnitPrice   types.FlexDecimal `json:"unit_price"`
	TaxPercent  types.FlexDecimal `json:"tax_percent"`
}

type CreateDocumentRequest struct {
	Kind           types.DocumentKind   `json:"kind" validate:"required"`
	Status         types.DocumentStatus `json:"status"`
	ClientName     string               `json:"client_name" validate:"required"`
	ClientEmail    string               `json:"client_email" validate:"required,email"`
	ClientPhone    string               `json:"client_phone"`
	ClientCompany  string               `json:"client_company"`
	CompanyDetails string               `json:"company_details"`
	Logo           string               `json:"logo"`
	Description    string               `json:"description"`
	Currency       string               `json:"currency"`
	IssueDate      string               `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate        string               `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Notes          string               `json:"notes"`
	ShowMonthly    bool                 `json:"show_monthly"`
	LineItems      []LineItemRequest    `json:"line_items"`
}

// UpdateDocumentRequest carries the full replacement state of a document.
// The line item set is replaced wholesale; there is no per-item patching.
type UpdateDocumentRequest struct {
	Status         types.DocumentStatus `json:"status"`
	ClientName     string               `json:"client_name" validate:"required"`
	ClientEmail    string               `json:"client_email" validate:"required,email"`
	ClientPhone    string               `json:"client_phone"`
	ClientCompany  string               `json:"client_company"`
	CompanyDetails string               `json:"company_details"`
	Logo           string               `json:"logo"`
	Description    string               `json:"description"`
	Currency       string               `json:"currency"`
	IssueDate      string               `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate        string               `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Notes          string               `json:"notes"`
	ShowMonthly    bool                 `json:"show_monthly"`
	LineItems      []LineItemRequest    `json:"line_items"`
}

type DocumentResponse struct {
	*document.Document
	Totals document.Totals `json:"totals"`
}

func NewDocumentResponse(doc *document.Document) *DocumentResponse {
	return &DocumentResponse{
		Document: doc,
		Totals:   doc.Totals(),
	}
}

// ListDocumentsResponse represents the response for listing documents
type ListDocumentsResponse = types.ListResponse[*DocumentResponse]

func (r *CreateDocumentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if r.Status != "" {
		return r.Status.ValidateFor(r.Kind)
	}
	return nil
}

func (r *UpdateDocumentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateDocumentRequest) ToDocument(ctx context.Context) (*document.Document, error) {
	issueDate, err := parseDate(r.IssueDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return nil, err
	}

	status := r.Status
	if status == "" {
		status = types.DocumentStatusDraft
	}

	prefix := types.UUID_PREFIX_INVOICE
	if r.Kind == types.DocumentKindQuote {
		prefix = types.UUID_PREFIX_QUOTE
	}

	doc := &document.Document{
		ID:             types.GenerateUUIDWithPrefix(prefix),
		Kind:           r.Kind,
		Status:         status,
		ClientName:     r.ClientName,
		ClientEmail:    r.ClientEmail,
		ClientPhone:    r.ClientPhone,
		ClientCompany:  r.ClientCompany,
		CompanyDetails: r.CompanyDetails,
		Logo:           r.Logo,
		Description:    r.Description,
		Currency:       r.Currency,
		IssueDate:      issueDate,
		DueDate:        dueDate,
		Notes:          r.Notes,
		ShowMonthly:    r.ShowMonthly,
		LineItems:      toLineItems(ctx, r.LineItems),
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
	return doc, nil
}

// Apply overwrites the mutable fields of an existing document with the
// request state, including a full line item replacement.
func (r *UpdateDocumentRequest) Apply(ctx context.Context, doc *document.Document) error {
	issueDate, err := parseDate(r.IssueDate)
	if err != nil {
		return err
	}
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return err
	}

	if r.Status != "" {
		if err := r.Status.ValidateFor(doc.Kind); err != nil {
			return err
		}
		doc.Status = r.Status
	}

	doc.ClientName = r.ClientName
	doc.ClientEmail = r.ClientEmail
	doc.ClientPhone = r.ClientPhone
	doc.ClientCompany = r.ClientCompany
	doc.CompanyDetails = r.CompanyDetails
	doc.Logo = r.Logo
	doc.Description = r.Description
	doc.Currency = r.Currency
	doc.IssueDate = issueDate
	doc.DueDate = dueDate
	doc.Notes = r.Notes
	doc.ShowMonthly = r.ShowMonthly
	doc.LineItems = toLineItems(ctx, r.LineItems)
	doc.UpdatedAt = time.Now().UTC()
	doc.UpdatedBy = types.GetUserID(ctx)
	return nil
}

func toLineItems(ctx context.Context, reqs []LineItemRequest) []*document.LineItem {
	items := make([]*document.LineItem, 0, len(reqs))
	for _, li := range reqs {
		items = append(items, &document.LineItem{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LINE_ITEM),
			Name:        li.Name,
			Description: li.Description,
			Quantity:    li.Quantity.NonNegative(),
			UnitPrice:   li.UnitPrice.NonNegative(),
			TaxPercent:  li.TaxPercent.NonNegative(),
			BaseModel:   types.GetDefaultBaseModel(ctx),
		})
	}
	return items
}

// DegradedFields reports which numeric inputs were coerced to zero so the
// caller can log the degradation.
func (r *CreateDocumentRequest) DegradedFields() []string {
	return degradedFields(r.LineItems)
}

func (r *UpdateDocumentRequest) DegradedFields() []string {
	return degradedFields(r.LineItems)
}

func degradedFields(items []LineItemRequest) []string {
	var fields []string
	for i, li := range items {
		if li.Quantity.Degraded {
			fields = append(fields, fieldRef(i, "quantity"))
		}
		if li.UnitPrice.Degraded {
			fields = append(fields, fieldRef(i, "unit_price"))
		}
		if li.TaxPercent.Degraded {
			fields = append(fields, fieldRef(i, "tax_percent"))
		}
	}
	return fields
}

func fieldRef(index int, name string) string {
	return "line_items[" + strconv.Itoa(index) + "]." + name
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHint("Dates must use the YYYY-MM-DD format").
			Mark(ierr.ErrValidation)
	}
	return t, nil
}
