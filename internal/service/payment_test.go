package service

import (
	"context"
	"testing"

	"github.com/digitalnexcode/invoiceflow/internal/api/dto"
	"github.com/digitalnexcode/invoiceflow/internal/domain/settings"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/integration/yoco"
	"github.com/digitalnexcode/invoiceflow/internal/testutil"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type fakePaymentLinks struct {
	lastSecretKey string
	lastRequest   *yoco.PaymentLinkRequest
	url           string
	err           error
}

func (f *fakePaymentLinks) CreatePaymentLink(ctx context.Context, secretKey string, req *yoco.PaymentLinkRequest) (string, error) {
	f.lastSecretKey = secretKey
	f.lastRequest = req
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type PaymentServiceSuite struct {
	testutil.BaseServiceTestSuite
	documents DocumentService
	service   PaymentService
	links     *fakePaymentLinks
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	s.links = &fakePaymentLinks{url: "https://pay.test/abc"}

	stores := s.GetStores()
	params := ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DocumentRepo: stores.DocumentRepo,
		SettingsRepo: stores.SettingsRepo,
		ClientRepo:   stores.ClientRepo,
		PaymentLinks: s.links,
	}
	s.documents = NewDocumentService(params)
	s.service = NewPaymentService(params, NewSettingsService(params))
}

func (s *PaymentServiceSuite) seedKeys() {
	s.Require().NoError(s.GetStores().SettingsRepo.Upsert(s.GetContext(), &settings.Settings{
		ID:                "set_1",
		UserID:            s.GetUserID(),
		YocoSecretKey:     "sk_live_123",
		YocoTestSecretKey: "sk_test_123",
	}))
}

func (s *PaymentServiceSuite) createInvoice() *dto.DocumentResponse {
	resp, err := s.documents.CreateDocument(s.GetContext(), &dto.CreateDocumentRequest{
		Kind:        types.DocumentKindInvoice,
		ClientName:  "Acme Ltd",
		ClientEmail: "billing@acme.test",
		Currency:    "ZAR",
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
	})
	s.Require().NoError(err)
	return resp
}

func (s *PaymentServiceSuite) TestCreatePaymentLink() {
	s.seedKeys()
	doc := s.createInvoice()

	resp, err := s.service.CreatePaymentLink(s.GetContext(), &dto.CreatePaymentLinkRequest{DocumentID: doc.ID})
	s.NoError(err)
	s.Equal("https://pay.test/abc", resp.URL)
	s.Equal(doc.ID, resp.DocumentID)

	// total 270.00 converts to minor units
	s.Require().NotNil(s.links.lastRequest)
	s.Equal(int64(27000), s.links.lastRequest.AmountInCents)
	s.Equal("ZAR", s.links.lastRequest.Currency)
	s.Equal("billing@acme.test", s.links.lastRequest.ClientEmail)
}

func (s *PaymentServiceSuite) TestUsesTestKeyInTestMode() {
	s.seedKeys()
	doc := s.createInvoice()

	s.GetConfig().Yoco.TestMode = true
	_, err := s.service.CreatePaymentLink(s.GetContext(), &dto.CreatePaymentLinkRequest{DocumentID: doc.ID})
	s.NoError(err)
	s.Equal("sk_test_123", s.links.lastSecretKey)

	s.GetConfig().Yoco.TestMode = false
	_, err = s.service.CreatePaymentLink(s.GetContext(), &dto.CreatePaymentLinkRequest{DocumentID: doc.ID})
	s.NoError(err)
	s.Equal("sk_live_123", s.links.lastSecretKey)
}

func (s *PaymentServiceSuite) TestRejectsQuotes() {
	s.seedKeys()
	quote, err := s.documents.CreateDocument(s.GetContext(), &dto.CreateDocumentRequest{
		Kind:        types.DocumentKindQuote,
		ClientName:  "Acme Ltd",
		ClientEmail: "billing@acme.test",
		Currency:    "ZAR",
		LineItems: []dto.LineItemRequest{{
			Name:      "Design",
			Quantity:  types.NewFlexDecimal(decimal.NewFromInt(1)),
			UnitPrice: types.NewFlexDecimal(decimal.NewFromInt(100)),
		}},
	})
	s.Require().NoError(err)

	_, err = s.service.CreatePaymentLink(s.GetContext(), &dto.CreatePaymentLinkRequest{DocumentID: quote.ID})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PaymentServiceSuite) TestRequiresSecretKey() {
	doc := s.createInvoice()

	_, err := s.service.CreatePaymentLink(s.GetContext(), &dto.CreatePaymentLinkRequest{DocumentID: doc.ID})
	s.Error(err)
	s.True(ierr.IsPreconditionNotMet(err))
}

func (s *PaymentServiceSuite) TestRequiresPositiveTotal() {
	s.seedKeys()
	empty, err := s.documents.CreateDocument(s.GetContext(), &dto.CreateDocumentRequest{
		Kind:        types.DocumentKindInvoice,
		ClientName:  "Acme Ltd",
		ClientEmail: "billing@acme.test",
		Currency:    "ZAR",
	})
	s.Require().NoError(err)

	_, err = s.service.CreatePaymentLink(s.GetContext(), &dto.CreatePaymentLinkRequest{DocumentID: empty.ID})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}
