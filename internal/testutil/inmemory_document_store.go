package testutil

import (
	"context"
	"sync"

	"github.com/digitalnexcode/invoiceflow/internal/domain/document"
	"github.com/digitalnexcode/invoiceflow/internal/types"
)

// InMemoryDocumentStore is an in-memory implementation of the document
// repository. Stored documents are copied on the way in and out so tests
// cannot mutate the store through shared pointers.
type InMemoryDocumentStore struct {
	mu   sync.Mutex
	docs map[string]*document.Document
}

func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		docs: make(map[string]*document.Document),
	}
}

func copyDocument(doc *document.Document) *document.Document {
	cp := *doc
	cp.LineItems = make([]*document.LineItem, len(doc.LineItems))
	for i, item := range doc.LineItems {
		itemCp := *item
		cp.LineItems[i] = &itemCp
	}
	return &cp
}

func (s *InMemoryDocumentStore) Create(ctx context.Context, doc *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[doc.ID]; exists {
		return document.ErrNumberTaken
	}
	s.docs[doc.ID] = copyDocument(doc)
	return nil
}

func (s *InMemoryDocumentStore) Get(ctx context.Context, id string) (*document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, exists := s.docs[id]
	if !exists || doc.BaseModel.Status == types.StatusDeleted {
		return nil, document.ErrDocumentNotFound
	}
	return copyDocument(doc), nil
}

func (s *InMemoryDocumentStore) Update(ctx context.Context, doc *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[doc.ID]; !exists {
		return document.ErrDocumentNotFound
	}
	s.docs[doc.ID] = copyDocument(doc)
	return nil
}

func (s *InMemoryDocumentStore) List(ctx context.Context, filter *types.DocumentFilter) ([]*document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []*document.Document
	for _, doc := range s.docs {
		if s.matches(doc, filter) {
			docs = append(docs, copyDocument(doc))
		}
	}
	return docs, nil
}

func (s *InMemoryDocumentStore) Count(ctx context.Context, filter *types.DocumentFilter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, doc := range s.docs {
		if s.matches(doc, filter) {
			count++
		}
	}
	return count, nil
}

func (s *InMemoryDocumentStore) NumberExists(ctx context.Context, kind types.DocumentKind, number string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.docs {
		if doc.Kind == kind && doc.Number == number && doc.BaseModel.Status != types.StatusDeleted {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemoryDocumentStore) matches(doc *document.Document, filter *types.DocumentFilter) bool {
	if doc.BaseModel.Status == types.StatusDeleted {
		return false
	}
	if filter == nil {
		return true
	}
	if filter.Kind != "" && doc.Kind != filter.Kind {
		return false
	}
	if filter.Status != "" && doc.Status != filter.Status {
		return false
	}
	if filter.ClientEmail != "" && doc.ClientEmail != filter.ClientEmail {
		return false
	}
	return true
}
