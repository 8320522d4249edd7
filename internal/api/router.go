package api

import (
	"net/http"

	v1 "github.com/digitalnexcode/invoiceflow/internal/api/v1"
	"github.com/digitalnexcode/invoiceflow/internal/auth"
	"github.com/digitalnexcode/invoiceflow/internal/config"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/digitalnexcode/invoiceflow/internal/rest/middleware"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Document *v1.DocumentHandler
	Export   *v1.ExportHandler
	Settings *v1.SettingsHandler
	Payment  *v1.PaymentHandler
	Client   *v1.ClientHandler
	Auth     *v1.AuthHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, provider auth.Provider, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes are public
	authGroup := router.Group("/v1/auth")
	{
		authGroup.POST("/signup", handlers.Auth.SignUp)
		authGroup.POST("/login", handlers.Auth.Login)
	}

	v1Group := router.Group("/v1")
	if cfg.Deployment.Mode == types.ModeLocal {
		v1Group.Use(middleware.GuestAuthenticateMiddleware)
	} else {
		v1Group.Use(middleware.AuthenticateMiddleware(provider, log))
	}
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	router.GET("/auth/me", handlers.Auth.Me)

	// Invoices and quotes share handlers; the group pins the kind
	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Document.CreateDocument(types.DocumentKindInvoice))
		invoices.GET("", handlers.Document.ListDocuments(types.DocumentKindInvoice))
		invoices.GET("/:id", handlers.Document.GetDocument)
		invoices.PUT("/:id", handlers.Document.UpdateDocument)
		invoices.GET("/:id/export", handlers.Export.ExportDocument)
		invoices.GET("/:id/preview", handlers.Export.PreviewDocument)
	}

	quotes := router.Group("/quotes")
	{
		quotes.POST("", handlers.Document.CreateDocument(types.DocumentKindQuote))
		quotes.GET("", handlers.Document.ListDocuments(types.DocumentKindQuote))
		quotes.GET("/:id", handlers.Document.GetDocument)
		quotes.PUT("/:id", handlers.Document.UpdateDocument)
		quotes.GET("/:id/export", handlers.Export.ExportDocument)
		quotes.GET("/:id/preview", handlers.Export.PreviewDocument)
	}

	settings := router.Group("/settings")
	{
		settings.GET("", handlers.Settings.GetSettings)
		settings.PUT("", handlers.Settings.UpdateSettings)
	}

	paymentLinks := router.Group("/payment-links")
	{
		paymentLinks.POST("", handlers.Payment.CreatePaymentLink)
	}

	clients := router.Group("/clients")
	{
		clients.POST("", handlers.Client.CreateClient)
		clients.GET("", handlers.Client.ListClients)
		clients.GET("/:id", handlers.Client.GetClient)
		clients.PUT("/:id", handlers.Client.UpdateClient)
	}
}
