package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/digitalnexcode/invoiceflow/internal/api/dto"
	"github.com/digitalnexcode/invoiceflow/internal/domain/settings"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/testutil"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DocumentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DocumentService
}

func TestDocumentService(t *testing.T) {
	suite.Run(t, new(DocumentServiceSuite))
}

func (s *DocumentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewDocumentService(s.params())
}

func (s *DocumentServiceSuite) params() ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DocumentRepo: stores.DocumentRepo,
		SettingsRepo: stores.SettingsRepo,
		ClientRepo:   stores.ClientRepo,
	}
}

func (s *DocumentServiceSuite) createRequest(kind types.DocumentKind) *dto.CreateDocumentRequest {
	return &dto.CreateDocumentRequest{
		Kind:        kind,
		ClientName:  "Acme Ltd",
		ClientEmail: "billing@acme.test",
		Currency:    "ZAR",
		IssueDate:   "2025-03-01",
		DueDate:     "2025-03-31",
		LineItems: []dto.LineItemRequest{
			{
				Name:       "Hosting",
				Quantity:   types.NewFlexDecimal(decimal.NewFromInt(2)),
				UnitPrice:  types.NewFlexDecimal(decimal.NewFromInt(100)),
				TaxPercent: types.NewFlexDecimal(decimal.NewFromInt(10)),
			},
			{
				Name:      "Support",
				Quantity:  types.NewFlexDecimal(decimal.NewFromInt(1)),
				UnitPrice: types.NewFlexDecimal(decimal.NewFromInt(50)),
			},
		},
	}
}

func (s *DocumentServiceSuite) TestCreateInvoice() {
	resp, err := s.service.CreateDocument(s.GetContext(), s.createRequest(types.DocumentKindInvoice))
	s.NoError(err)
	s.NotNil(resp)

	s.True(strings.HasPrefix(resp.Number, "INV-"))
	s.Equal(types.DocumentStatusDraft, resp.Status)
	s.True(resp.Amount.Equal(decimal.NewFromInt(270)), "amount: %s", resp.Amount)
	s.True(resp.Totals.Subtotal.Equal(decimal.NewFromInt(250)))
	s.Len(resp.LineItems, 2)
	s.Equal(s.GetUserID(), resp.CreatedBy)
}

func (s *DocumentServiceSuite) TestCreateQuoteNumberPrefix() {
	resp, err := s.service.CreateDocument(s.GetContext(), s.createRequest(types.DocumentKindQuote))
	s.NoError(err)
	s.True(strings.HasPrefix(resp.Number, "QUO-"))
}

func (s *DocumentServiceSuite) TestCreateRequiresClientName() {
	req := s.createRequest(types.DocumentKindInvoice)
	req.ClientName = ""

	_, err := s.service.CreateDocument(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *DocumentServiceSuite) TestCreateRejectsInvalidStatusForKind() {
	req := s.createRequest(types.DocumentKindQuote)
	req.Status = types.DocumentStatusPaid

	_, err := s.service.CreateDocument(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *DocumentServiceSuite) TestCreateCoercesMalformedNumbers() {
	var li dto.LineItemRequest
	s.NoError(json.Unmarshal([]byte(`{
		"name": "Weird",
		"quantity": "not-a-number",
		"unit_price": 100,
		"tax_percent": null
	}`), &li))

	req := s.createRequest(types.DocumentKindInvoice)
	req.LineItems = []dto.LineItemRequest{li}

	resp, err := s.service.CreateDocument(s.GetContext(), req)
	s.NoError(err, "malformed numbers degrade to zero, they never fail the request")
	s.True(resp.Amount.IsZero())
}

func (s *DocumentServiceSuite) TestCreateClampsNegativeInputs() {
	req := s.createRequest(types.DocumentKindInvoice)
	req.LineItems = []dto.LineItemRequest{{
		Name:       "Negative",
		Quantity:   types.NewFlexDecimal(decimal.NewFromInt(2)),
		UnitPrice:  types.NewFlexDecimal(decimal.NewFromInt(-100)),
		TaxPercent: types.NewFlexDecimal(decimal.NewFromInt(-10)),
	}}

	resp, err := s.service.CreateDocument(s.GetContext(), req)
	s.NoError(err)
	s.True(resp.Amount.IsZero())
}

func (s *DocumentServiceSuite) TestCreateAppliesIssuerDefaultsFromSettings() {
	s.NoError(s.GetStores().SettingsRepo.Upsert(s.GetContext(), &settings.Settings{
		ID:             "set_1",
		UserID:         s.GetUserID(),
		CompanyDetails: "DigitalNexCode, Johannesburg",
		Logo:           "data:image/png;base64,AAAA",
	}))

	resp, err := s.service.CreateDocument(s.GetContext(), s.createRequest(types.DocumentKindInvoice))
	s.NoError(err)
	s.Equal("DigitalNexCode, Johannesburg", resp.CompanyDetails)
	s.Equal("data:image/png;base64,AAAA", resp.Logo)
}

func (s *DocumentServiceSuite) TestCreateRemembersClient() {
	_, err := s.service.CreateDocument(s.GetContext(), s.createRequest(types.DocumentKindInvoice))
	s.NoError(err)

	c, err := s.GetStores().ClientRepo.GetByEmail(s.GetContext(), "billing@acme.test")
	s.NoError(err)
	s.Equal("Acme Ltd", c.Name)
}

func (s *DocumentServiceSuite) TestUpdateReplacesLineItemSet() {
	created, err := s.service.CreateDocument(s.GetContext(), s.createRequest(types.DocumentKindInvoice))
	s.NoError(err)
	s.Len(created.LineItems, 2)

	updated, err := s.service.UpdateDocument(s.GetContext(), created.ID, &dto.UpdateDocumentRequest{
		ClientName:  "Acme Ltd",
		ClientEmail: "billing@acme.test",
		Currency:    "ZAR",
		LineItems: []dto.LineItemRequest{{
			Name:      "Consolidated",
			Quantity:  types.NewFlexDecimal(decimal.NewFromInt(1)),
			UnitPrice: types.NewFlexDecimal(decimal.NewFromInt(500)),
		}},
	})
	s.NoError(err)
	s.Len(updated.LineItems, 1)
	s.Equal("Consolidated", updated.LineItems[0].Name)
	s.True(updated.Amount.Equal(decimal.NewFromInt(500)))

	// the old items are gone from the stored document too
	fetched, err := s.service.GetDocument(s.GetContext(), created.ID)
	s.NoError(err)
	s.Len(fetched.LineItems, 1)
}

func (s *DocumentServiceSuite) TestUpdateKeepsNumber() {
	created, err := s.service.CreateDocument(s.GetContext(), s.createRequest(types.DocumentKindInvoice))
	s.NoError(err)

	updated, err := s.service.UpdateDocument(s.GetContext(), created.ID, &dto.UpdateDocumentRequest{
		ClientName:  "Other Corp",
		ClientEmail: "ap@other.test",
		Currency:    "USD",
	})
	s.NoError(err)
	s.Equal(created.Number, updated.Number)
}

func (s *DocumentServiceSuite) TestUpdateMissingDocument() {
	_, err := s.service.UpdateDocument(s.GetContext(), "inv_missing", &dto.UpdateDocumentRequest{
		ClientName:  "Acme Ltd",
		ClientEmail: "billing@acme.test",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DocumentServiceSuite) TestGetMissingDocument() {
	_, err := s.service.GetDocument(s.GetContext(), "inv_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DocumentServiceSuite) TestListFiltersByKind() {
	_, err := s.service.CreateDocument(s.GetContext(), s.createRequest(types.DocumentKindInvoice))
	s.NoError(err)
	_, err = s.service.CreateDocument(s.GetContext(), s.createRequest(types.DocumentKindQuote))
	s.NoError(err)

	resp, err := s.service.ListDocuments(s.GetContext(), &types.DocumentFilter{Kind: types.DocumentKindInvoice})
	s.NoError(err)
	s.Equal(1, resp.Pagination.Total)
	s.Len(resp.Items, 1)
	s.Equal(types.DocumentKindInvoice, resp.Items[0].Kind)
}

func (s *DocumentServiceSuite) TestCreatedNumbersAreUnique() {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		resp, err := s.service.CreateDocument(s.GetContext(), s.createRequest(types.DocumentKindInvoice))
		s.NoError(err)
		s.False(seen[resp.Number], "number %s issued twice", resp.Number)
		seen[resp.Number] = true
	}
}
