package v1

import (
	"fmt"
	"net/http"

	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/digitalnexcode/invoiceflow/internal/pdfgen"
	"github.com/digitalnexcode/invoiceflow/internal/service"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	service service.ExportService
	log     *logger.Logger
}

func NewExportHandler(service service.ExportService, log *logger.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		log:     log,
	}
}

// ExportDocument handles GET /v1/{invoices|quotes}/:id/export?strategy=vector
func (h *ExportHandler) ExportDocument(c *gin.Context) {
	id := c.Param("id")

	strategy := pdfgen.Strategy(c.DefaultQuery("strategy", pdfgen.StrategyVector.String()))

	result, err := h.service.Export(c.Request.Context(), id, strategy)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// PreviewDocument handles GET /v1/{invoices|quotes}/:id/preview
func (h *ExportHandler) PreviewDocument(c *gin.Context) {
	id := c.Param("id")

	result, err := h.service.Preview(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
