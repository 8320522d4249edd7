package service

import (
	"context"

	"github.com/digitalnexcode/invoiceflow/internal/config"
	"github.com/digitalnexcode/invoiceflow/internal/domain/client"
	"github.com/digitalnexcode/invoiceflow/internal/domain/document"
	"github.com/digitalnexcode/invoiceflow/internal/domain/settings"
	"github.com/digitalnexcode/invoiceflow/internal/httpclient"
	"github.com/digitalnexcode/invoiceflow/internal/integration/yoco"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/digitalnexcode/invoiceflow/internal/pdfgen"
	"github.com/digitalnexcode/invoiceflow/internal/postgres"
)

// PaymentLinkCreator is the part of the payment provider client the
// services need. *yoco.Client satisfies it.
type PaymentLinkCreator interface {
	CreatePaymentLink(ctx context.Context, secretKey string, req *yoco.PaymentLinkRequest) (string, error)
}

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     *postgres.DB

	// Repositories
	DocumentRepo document.Repository
	SettingsRepo settings.Repository
	ClientRepo   client.Repository

	// Renderers keyed by export strategy
	Renderers map[pdfgen.Strategy]pdfgen.Renderer

	// Collaborators
	PaymentLinks PaymentLinkCreator
	Client       httpclient.Client
}
