package dto

import (
	"github.com/digitalnexcode/invoiceflow/internal/validator"
)

type CreatePaymentLinkRequest struct {
	DocumentID string `json:"document_id" validate:"required"`
}

type PaymentLinkResponse struct {
	DocumentID string `json:"document_id"`
	URL        string `json:"url"`
}

func (r *CreatePaymentLinkRequest) Validate() error {
	return validator.ValidateRequest(r)
}
