package main

import (
	"context"
	"time"

	"github.com/digitalnexcode/invoiceflow/internal/api"
	v1 "github.com/digitalnexcode/invoiceflow/internal/api/v1"
	"github.com/digitalnexcode/invoiceflow/internal/auth"
	"github.com/digitalnexcode/invoiceflow/internal/config"
	"github.com/digitalnexcode/invoiceflow/internal/domain/client"
	"github.com/digitalnexcode/invoiceflow/internal/domain/document"
	"github.com/digitalnexcode/invoiceflow/internal/domain/settings"
	"github.com/digitalnexcode/invoiceflow/internal/httpclient"
	"github.com/digitalnexcode/invoiceflow/internal/integration/yoco"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/digitalnexcode/invoiceflow/internal/pdfgen"
	"github.com/digitalnexcode/invoiceflow/internal/postgres"
	"github.com/digitalnexcode/invoiceflow/internal/repository"
	"github.com/digitalnexcode/invoiceflow/internal/service"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/digitalnexcode/invoiceflow/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,

			// Repositories
			repository.NewDocumentRepository,
			repository.NewSettingsRepository,
			repository.NewClientRepository,

			// Collaborators
			provideHTTPClient,
			provideAuthProvider,
			yoco.NewClient,

			// Services
			provideServiceParams,
			service.NewDocumentService,
			service.NewExportService,
			service.NewSettingsService,
			service.NewPaymentService,
			service.NewClientService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(initValidator, startServer),
	)
	app.Run()
}

func initValidator() {
	validator.NewValidator()
}

func provideHTTPClient(cfg *config.Configuration) httpclient.Client {
	return httpclient.NewRetryableClient(httpclient.RetryConfig{
		MaxRetries:   cfg.Yoco.MaxRetries,
		RetryWaitMin: cfg.Yoco.RetryWaitMin,
		RetryWaitMax: cfg.Yoco.RetryWaitMax,
	})
}

func provideAuthProvider(cfg *config.Configuration) auth.Provider {
	return auth.NewProvider(cfg)
}

func provideServiceParams(
	log *logger.Logger,
	cfg *config.Configuration,
	db *postgres.DB,
	documentRepo document.Repository,
	settingsRepo settings.Repository,
	clientRepo client.Repository,
	paymentLinks *yoco.Client,
	client httpclient.Client,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		DB:           db,
		DocumentRepo: documentRepo,
		SettingsRepo: settingsRepo,
		ClientRepo:   clientRepo,
		Renderers: map[pdfgen.Strategy]pdfgen.Renderer{
			pdfgen.StrategyVector: pdfgen.NewVectorRenderer(log),
			pdfgen.StrategyRaster: pdfgen.NewRasterRenderer(pdfgen.NewPreviewRasterizer(), log),
		},
		PaymentLinks: paymentLinks,
		Client:       client,
	}
}

func provideHandlers(
	log *logger.Logger,
	provider auth.Provider,
	documentService service.DocumentService,
	exportService service.ExportService,
	settingsService service.SettingsService,
	paymentService service.PaymentService,
	clientService service.ClientService,
) api.Handlers {
	return api.Handlers{
		Document: v1.NewDocumentHandler(documentService, log),
		Export:   v1.NewExportHandler(exportService, log),
		Settings: v1.NewSettingsHandler(settingsService, log),
		Payment:  v1.NewPaymentHandler(paymentService, log),
		Client:   v1.NewClientHandler(clientService, log),
		Auth:     v1.NewAuthHandler(provider, log),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, provider auth.Provider, log *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(handlers, cfg, provider, log)
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	db *postgres.DB,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			db.Close()
			return nil
		},
	})
}
