package service

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/digitalnexcode/invoiceflow/internal/api/dto"
	"github.com/digitalnexcode/invoiceflow/internal/domain/client"
	"github.com/digitalnexcode/invoiceflow/internal/domain/document"
	"github.com/digitalnexcode/invoiceflow/internal/domain/settings"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/types"
)

const (
	// numberAttempts bounds the fresh-number generation loop before the
	// collision suffix fallback kicks in
	numberAttempts = 10
	// suffixAttempts bounds the collision suffix fallback
	suffixAttempts = 100
)

// DocumentService manages invoices and quotes
type DocumentService interface {
	CreateDocument(ctx context.Context, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	GetDocument(ctx context.Context, id string) (*dto.DocumentResponse, error)
	UpdateDocument(ctx context.Context, id string, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	ListDocuments(ctx context.Context, filter *types.DocumentFilter) (*dto.ListDocumentsResponse, error)
}

type documentService struct {
	ServiceParams
}

func NewDocumentService(params ServiceParams) DocumentService {
	return &documentService{ServiceParams: params}
}

func (s *documentService) CreateDocument(ctx context.Context, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if degraded := req.DegradedFields(); len(degraded) > 0 {
		s.Logger.Warnw("coerced malformed numeric input to zero",
			"fields", degraded,
		)
	}

	doc, err := req.ToDocument(ctx)
	if err != nil {
		return nil, err
	}

	s.applyIssuerDefaults(ctx, doc)

	number, err := s.reserveNumber(ctx, doc.Kind)
	if err != nil {
		return nil, err
	}
	doc.Number = number
	doc.Amount = doc.Totals().Total

	if err := doc.Validate(); err != nil {
		return nil, toValidationError(err)
	}

	if err := s.DocumentRepo.Create(ctx, doc); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to save the document").
			Mark(ierr.ErrDatabase)
	}

	s.Logger.Infow("created document",
		"document_id", doc.ID,
		"kind", doc.Kind,
		"number", doc.Number,
	)

	s.rememberClient(ctx, doc)

	return dto.NewDocumentResponse(doc), nil
}

func (s *documentService) GetDocument(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	doc, err := s.DocumentRepo.Get(ctx, id)
	if err != nil {
		return nil, toNotFoundError(err, id)
	}
	return dto.NewDocumentResponse(doc), nil
}

func (s *documentService) UpdateDocument(ctx context.Context, id string, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if degraded := req.DegradedFields(); len(degraded) > 0 {
		s.Logger.Warnw("coerced malformed numeric input to zero",
			"document_id", id,
			"fields", degraded,
		)
	}

	doc, err := s.DocumentRepo.Get(ctx, id)
	if err != nil {
		return nil, toNotFoundError(err, id)
	}

	if err := req.Apply(ctx, doc); err != nil {
		return nil, err
	}
	doc.Amount = doc.Totals().Total

	if err := doc.Validate(); err != nil {
		return nil, toValidationError(err)
	}

	if err := s.DocumentRepo.Update(ctx, doc); err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			return nil, toNotFoundError(err, id)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to save the document").
			Mark(ierr.ErrDatabase)
	}

	s.Logger.Infow("updated document",
		"document_id", doc.ID,
		"line_items", len(doc.LineItems),
	)

	s.rememberClient(ctx, doc)

	return dto.NewDocumentResponse(doc), nil
}

func (s *documentService) ListDocuments(ctx context.Context, filter *types.DocumentFilter) (*dto.ListDocumentsResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	docs, err := s.DocumentRepo.List(ctx, filter)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list documents").
			Mark(ierr.ErrDatabase)
	}

	total, err := s.DocumentRepo.Count(ctx, filter)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to count documents").
			Mark(ierr.ErrDatabase)
	}

	items := make([]*dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		items = append(items, dto.NewDocumentResponse(doc))
	}

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

// applyIssuerDefaults fills issuer fields from the user's settings when
// the request left them empty.
func (s *documentService) applyIssuerDefaults(ctx context.Context, doc *document.Document) {
	if doc.CompanyDetails != "" && doc.Logo != "" {
		return
	}

	userSettings, err := s.SettingsRepo.GetByUserID(ctx, types.GetUserID(ctx))
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			s.Logger.Warnw("failed to load settings for issuer defaults", "error", err)
		}
		return
	}

	if doc.CompanyDetails == "" {
		doc.CompanyDetails = userSettings.CompanyDetails
	}
	if doc.Logo == "" {
		doc.Logo = userSettings.Logo
	}
}

// reserveNumber finds an unused document number. Fresh numbers derive
// from the clock, so colliding attempts are spaced out with exponential
// backoff; once the attempt budget is spent the last candidate gets a
// collision counter suffix instead.
func (s *documentService) reserveNumber(ctx context.Context, kind types.DocumentKind) (string, error) {
	var number string
	var lastCandidate string

	op := func() error {
		candidate := document.GenerateNumber(kind)
		lastCandidate = candidate

		exists, err := s.DocumentRepo.NumberExists(ctx, kind, candidate)
		if err != nil {
			return backoff.Permanent(err)
		}
		if exists {
			return document.ErrNumberTaken
		}
		number = candidate
		return nil
	}

	policy := backoff.WithContext(newNumberBackOff(), ctx)
	err := backoff.Retry(op, backoff.WithMaxRetries(policy, numberAttempts-1))
	if err == nil {
		return number, nil
	}
	if !errors.Is(err, document.ErrNumberTaken) {
		return "", ierr.WithError(err).
			WithHint("Failed to reserve a document number").
			Mark(ierr.ErrDatabase)
	}

	for counter := 1; counter <= suffixAttempts; counter++ {
		candidate := document.SuffixedNumber(lastCandidate, counter)
		exists, err := s.DocumentRepo.NumberExists(ctx, kind, candidate)
		if err != nil {
			return "", ierr.WithError(err).
				WithHint("Failed to reserve a document number").
				Mark(ierr.ErrDatabase)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", ierr.NewError("could not reserve a unique document number").
		WithHint("Please retry the request").
		Mark(ierr.ErrAlreadyExists)
}

func newNumberBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Millisecond
	bo.MaxInterval = 50 * time.Millisecond
	bo.MaxElapsedTime = 5 * time.Second
	return bo
}

// rememberClient upserts the counterparty into the client book. Failures
// never fail the document operation.
func (s *documentService) rememberClient(ctx context.Context, doc *document.Document) {
	entry := &client.Client{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:      doc.ClientName,
		Email:     doc.ClientEmail,
		Phone:     doc.ClientPhone,
		Company:   doc.ClientCompany,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	if err := entry.Validate(); err != nil {
		return
	}
	if err := s.ClientRepo.Upsert(ctx, entry); err != nil {
		s.Logger.Warnw("failed to remember client",
			"email", doc.ClientEmail,
			"error", err,
		)
	}
}

func toValidationError(err error) error {
	var ve *document.ValidationError
	if errors.As(err, &ve) {
		return ierr.WithError(err).
			WithHint("Please fix the invalid field").
			WithReportableDetails(map[string]any{
				"field": ve.Field,
			}).
			Mark(ierr.ErrValidation)
	}
	return err
}

func toNotFoundError(err error, id string) error {
	if errors.Is(err, document.ErrDocumentNotFound) {
		return ierr.WithError(err).
			WithHintf("Document with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return ierr.WithError(err).
		WithHint("Failed to load the document").
		Mark(ierr.ErrDatabase)
}
