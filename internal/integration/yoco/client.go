package yoco

import (
	"context"
	"net/http"

	"github.com/digitalnexcode/invoiceflow/internal/config"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/httpclient"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PaymentLinkRequest describes one payment page to create. Amounts are in
// minor units (cents) because that is what the provider expects.
type PaymentLinkRequest struct {
	AmountInCents int64             `json:"amount_in_cents"`
	Currency      string            `json:"currency"`
	Description   string            `json:"description"`
	ClientName    string            `json:"client_name,omitempty"`
	ClientEmail   string            `json:"client_email,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Client is a thin REST client for the Yoco payment pages API. Retry with
// exponential backoff lives in the underlying http client, configured
// from YocoConfig; nothing here retries on its own.
type Client struct {
	baseURL string
	http    httpclient.Client
	logger  *logger.Logger
}

func NewClient(cfg *config.Configuration, client httpclient.Client, logger *logger.Logger) *Client {
	return &Client{
		baseURL: cfg.Yoco.BaseURL,
		http:    client,
		logger:  logger,
	}
}

type paymentPagePayload struct {
	Amount struct {
		Currency string `json:"currency"`
		Value    int64  `json:"value"`
	} `json:"amount"`
	Billing struct {
		Email string `json:"email,omitempty"`
		Name  string `json:"name,omitempty"`
	} `json:"billing"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type paymentPageResponse struct {
	URL string `json:"url"`
}

// CreatePaymentLink creates a hosted payment page and returns its URL.
// The secret key belongs to the acting user and comes from their settings.
func (c *Client) CreatePaymentLink(ctx context.Context, secretKey string, req *PaymentLinkRequest) (string, error) {
	if secretKey == "" {
		return "", ierr.NewError("no payment provider secret key configured").
			WithHint("Add your Yoco keys in settings before creating payment links").
			Mark(ierr.ErrValidation)
	}

	payload := paymentPagePayload{
		Metadata: map[string]string{},
	}
	payload.Amount.Currency = req.Currency
	payload.Amount.Value = req.AmountInCents
	payload.Billing.Email = req.ClientEmail
	payload.Billing.Name = req.ClientName
	for k, v := range req.Metadata {
		payload.Metadata[k] = v
	}
	if req.Description != "" {
		payload.Metadata["description"] = req.Description
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to build payment link payload").
			Mark(ierr.ErrSystem)
	}

	c.logger.Debugw("creating payment link",
		"currency", req.Currency,
		"amount_in_cents", req.AmountInCents,
	)

	resp, err := c.http.Send(ctx, &httpclient.Request{
		Method: http.MethodPost,
		URL:    c.baseURL + "/payment-pages",
		Headers: map[string]string{
			"Authorization": "Bearer " + secretKey,
			"Accept":        "application/json",
		},
		Body: body,
	})
	if err != nil {
		return "", err
	}

	var result paymentPageResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return "", ierr.WithError(err).
			WithHint("Payment provider returned an unreadable response").
			Mark(ierr.ErrHTTPClient)
	}

	if result.URL == "" {
		return "", ierr.NewError("no payment URL in response").
			WithHint("Payment provider did not return a payment URL").
			Mark(ierr.ErrHTTPClient)
	}

	return result.URL, nil
}
