package yoco

import (
	"context"
	"testing"

	"github.com/digitalnexcode/invoiceflow/internal/config"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/digitalnexcode/invoiceflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *testutil.MockHTTPClient, string) {
	t.Helper()

	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	mock := testutil.NewMockHTTPClient()
	return NewClient(cfg, mock, log), mock, cfg.Yoco.BaseURL + "/payment-pages"
}

func TestCreatePaymentLink(t *testing.T) {
	client, mock, endpoint := newTestClient(t)
	mock.RegisterResponse(endpoint, testutil.MockResponse{
		StatusCode: 200,
		Body:       []byte(`{"url": "https://pay.yoco.com/r/abc123"}`),
	})

	url, err := client.CreatePaymentLink(context.Background(), "sk_test_123", &PaymentLinkRequest{
		AmountInCents: 27000,
		Currency:      "ZAR",
		Description:   "Invoice INV-123456-007",
		ClientName:    "Acme Ltd",
		ClientEmail:   "billing@acme.test",
		Metadata:      map[string]string{"document_id": "inv_1"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://pay.yoco.com/r/abc123", url)

	require.Len(t, mock.Requests, 1)
	sent := mock.Requests[0]
	assert.Equal(t, "POST", sent.Method)
	assert.Equal(t, "Bearer sk_test_123", sent.Headers["Authorization"])

	var payload paymentPagePayload
	require.NoError(t, json.Unmarshal(sent.Body, &payload))
	assert.Equal(t, "ZAR", payload.Amount.Currency)
	assert.Equal(t, int64(27000), payload.Amount.Value)
	assert.Equal(t, "billing@acme.test", payload.Billing.Email)
	assert.Equal(t, "Acme Ltd", payload.Billing.Name)
	assert.Equal(t, "inv_1", payload.Metadata["document_id"])
	assert.Equal(t, "Invoice INV-123456-007", payload.Metadata["description"])
}

func TestCreatePaymentLinkRequiresSecretKey(t *testing.T) {
	client, mock, _ := newTestClient(t)

	_, err := client.CreatePaymentLink(context.Background(), "", &PaymentLinkRequest{
		AmountInCents: 100,
		Currency:      "ZAR",
	})
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
	assert.Empty(t, mock.Requests, "no request is sent without a key")
}

func TestCreatePaymentLinkMissingURL(t *testing.T) {
	client, mock, endpoint := newTestClient(t)
	mock.RegisterResponse(endpoint, testutil.MockResponse{
		StatusCode: 200,
		Body:       []byte(`{}`),
	})

	_, err := client.CreatePaymentLink(context.Background(), "sk_test_123", &PaymentLinkRequest{
		AmountInCents: 100,
		Currency:      "ZAR",
	})
	assert.Error(t, err)
}

func TestCreatePaymentLinkProviderError(t *testing.T) {
	client, mock, endpoint := newTestClient(t)
	mock.RegisterResponse(endpoint, testutil.MockResponse{
		StatusCode: 401,
		Body:       []byte(`{"message": "invalid key"}`),
	})

	_, err := client.CreatePaymentLink(context.Background(), "sk_bad", &PaymentLinkRequest{
		AmountInCents: 100,
		Currency:      "ZAR",
	})
	assert.Error(t, err)
}
