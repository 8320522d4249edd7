package service

import (
	"testing"

	"github.com/digitalnexcode/invoiceflow/internal/api/dto"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/pdfgen"
	"github.com/digitalnexcode/invoiceflow/internal/testutil"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExportServiceSuite struct {
	testutil.BaseServiceTestSuite
	documents DocumentService
	service   ExportService
}

func TestExportService(t *testing.T) {
	suite.Run(t, new(ExportServiceSuite))
}

func (s *ExportServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	params := ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DocumentRepo: stores.DocumentRepo,
		SettingsRepo: stores.SettingsRepo,
		ClientRepo:   stores.ClientRepo,
		Renderers: map[pdfgen.Strategy]pdfgen.Renderer{
			pdfgen.StrategyVector: pdfgen.NewVectorRenderer(s.GetLogger()),
			pdfgen.StrategyRaster: pdfgen.NewRasterRenderer(pdfgen.NewPreviewRasterizer(), s.GetLogger()),
		},
	}
	s.documents = NewDocumentService(params)
	s.service = NewExportService(params)
}

func (s *ExportServiceSuite) createInvoice() *dto.DocumentResponse {
	resp, err := s.documents.CreateDocument(s.GetContext(), &dto.CreateDocumentRequest{
		Kind:        types.DocumentKindInvoice,
		ClientName:  "Acme Ltd",
		ClientEmail: "billing@acme.test",
		Currency:    "ZAR",
		LineItems: []dto.LineItemRequest{{
			Name:       "Hosting",
			Quantity:   types.NewFlexDecimal(decimal.NewFromInt(2)),
			UnitPrice:  types.NewFlexDecimal(decimal.NewFromInt(100)),
			TaxPercent: types.NewFlexDecimal(decimal.NewFromInt(10)),
		}},
	})
	s.Require().NoError(err)
	return resp
}

func (s *ExportServiceSuite) TestExportVector() {
	doc := s.createInvoice()

	result, err := s.service.Export(s.GetContext(), doc.ID, pdfgen.StrategyVector)
	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal("%PDF", string(result.Data[:4]))
	s.Equal("invoice-"+doc.Number+".pdf", result.Filename)
	s.Equal("application/pdf", result.ContentType)
}

func (s *ExportServiceSuite) TestExportRaster() {
	doc := s.createInvoice()

	result, err := s.service.Export(s.GetContext(), doc.ID, pdfgen.StrategyRaster)
	s.NoError(err)
	s.Equal("%PDF", string(result.Data[:4]))
}

func (s *ExportServiceSuite) TestExportUnknownStrategy() {
	doc := s.createInvoice()

	_, err := s.service.Export(s.GetContext(), doc.ID, pdfgen.Strategy("html"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ExportServiceSuite) TestExportMissingDocument() {
	_, err := s.service.Export(s.GetContext(), "inv_missing", pdfgen.StrategyVector)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ExportServiceSuite) TestRasterPreconditionFailureLeavesDocumentIntact() {
	doc := s.createInvoice()

	// a raster renderer with no snapshot source cannot run
	stores := s.GetStores()
	broken := NewExportService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DocumentRepo: stores.DocumentRepo,
		SettingsRepo: stores.SettingsRepo,
		ClientRepo:   stores.ClientRepo,
		Renderers: map[pdfgen.Strategy]pdfgen.Renderer{
			pdfgen.StrategyRaster: pdfgen.NewRasterRenderer(nil, s.GetLogger()),
		},
	})

	result, err := broken.Export(s.GetContext(), doc.ID, pdfgen.StrategyRaster)
	s.Error(err)
	s.True(ierr.IsPreconditionNotMet(err))
	s.Nil(result, "no partial artifact on export failure")

	// the saved document is untouched by the failed export
	fetched, err := s.documents.GetDocument(s.GetContext(), doc.ID)
	s.NoError(err)
	s.Equal(doc.Number, fetched.Number)
}

func (s *ExportServiceSuite) TestExportIsIdempotent() {
	doc := s.createInvoice()

	first, err := s.service.Export(s.GetContext(), doc.ID, pdfgen.StrategyVector)
	s.NoError(err)
	second, err := s.service.Export(s.GetContext(), doc.ID, pdfgen.StrategyVector)
	s.NoError(err)

	// same filename and a well-formed artifact both times; byte equality
	// is not guaranteed because the PDF embeds a creation timestamp
	s.Equal(first.Filename, second.Filename)
	s.Equal("%PDF", string(second.Data[:4]))
}

func (s *ExportServiceSuite) TestPreviewProducesPNG() {
	doc := s.createInvoice()

	result, err := s.service.Preview(s.GetContext(), doc.ID)
	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal("image/png", result.ContentType)
	s.Equal("invoice-"+doc.Number+".png", result.Filename)
	s.Equal("\x89PNG", string(result.Data[:4]))
}
