package v1

import (
	"net/http"

	"github.com/digitalnexcode/invoiceflow/internal/api/dto"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/digitalnexcode/invoiceflow/internal/service"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/gin-gonic/gin"
)

// DocumentHandler serves both invoices and quotes; the route group pins
// the kind so the two surfaces stay symmetric.
type DocumentHandler struct {
	service service.DocumentService
	log     *logger.Logger
}

func NewDocumentHandler(service service.DocumentService, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		log:     log,
	}
}

// CreateDocument handles POST /v1/invoices and POST /v1/quotes
func (h *DocumentHandler) CreateDocument(kind types.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateDocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(ierr.WithError(err).
				WithHint("Invalid request format").
				Mark(ierr.ErrValidation))
			return
		}
		req.Kind = kind

		resp, err := h.service.CreateDocument(c.Request.Context(), &req)
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// GetDocument handles GET /v1/invoices/:id and GET /v1/quotes/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetDocument(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateDocument handles PUT /v1/invoices/:id and PUT /v1/quotes/:id
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateDocument(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListDocuments handles GET /v1/invoices and GET /v1/quotes
func (h *DocumentHandler) ListDocuments(kind types.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter types.DocumentFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			c.Error(ierr.WithError(err).
				WithHint("Invalid query parameters").
				Mark(ierr.ErrValidation))
			return
		}
		filter.Kind = kind

		resp, err := h.service.ListDocuments(c.Request.Context(), &filter)
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
