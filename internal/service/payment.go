package service

import (
	"context"

	"github.com/digitalnexcode/invoiceflow/internal/api/dto"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/integration/yoco"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

var centsPerUnit = decimal.NewFromInt(100)

// PaymentService creates hosted payment links for invoices
type PaymentService interface {
	CreatePaymentLink(ctx context.Context, req *dto.CreatePaymentLinkRequest) (*dto.PaymentLinkResponse, error)
}

type paymentService struct {
	ServiceParams
	settings SettingsService
}

func NewPaymentService(params ServiceParams, settingsService SettingsService) PaymentService {
	return &paymentService{
		ServiceParams: params,
		settings:      settingsService,
	}
}

func (s *paymentService) CreatePaymentLink(ctx context.Context, req *dto.CreatePaymentLinkRequest) (*dto.PaymentLinkResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.DocumentRepo.Get(ctx, req.DocumentID)
	if err != nil {
		return nil, toNotFoundError(err, req.DocumentID)
	}

	if doc.Kind != types.DocumentKindInvoice {
		return nil, ierr.NewError("payment links are only available for invoices").
			WithHint("Quotes cannot carry a payment link").
			Mark(ierr.ErrInvalidOperation)
	}

	totals := doc.Totals()
	if !totals.Total.IsPositive() {
		return nil, ierr.NewError("invoice total must be positive").
			WithHint("Add at least one line item before requesting a payment link").
			Mark(ierr.ErrInvalidOperation)
	}

	userSettings, err := s.settings.GetDomainSettings(ctx)
	if err != nil {
		return nil, err
	}
	_, secretKey := userSettings.Keys(s.Config.Yoco.TestMode)
	if secretKey == "" {
		return nil, ierr.NewError("no payment provider secret key configured").
			WithHint("Add your Yoco keys in settings before creating payment links").
			Mark(ierr.ErrPreconditionNotMet)
	}

	amountInCents := totals.Total.Mul(centsPerUnit).Round(0).IntPart()

	url, err := s.PaymentLinks.CreatePaymentLink(ctx, secretKey, &yoco.PaymentLinkRequest{
		AmountInCents: amountInCents,
		Currency:      doc.Currency,
		Description:   doc.Number,
		ClientName:    doc.ClientName,
		ClientEmail:   doc.ClientEmail,
		Metadata: map[string]string{
			"document_id": doc.ID,
			"number":      doc.Number,
		},
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created payment link",
		"document_id", doc.ID,
		"amount_in_cents", amountInCents,
	)

	return &dto.PaymentLinkResponse{
		DocumentID: doc.ID,
		URL:        url,
	}, nil
}
