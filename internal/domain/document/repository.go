package document

import (
	"context"

	"github.com/digitalnexcode/invoiceflow/internal/types"
)

// Repository defines the interface for document persistence operations.
// Implementations must treat the line item set as wholly owned by the
// document: Update replaces every existing item row with the new set.
type Repository interface {
	// Create creates a new document together with its line items
	Create(ctx context.Context, doc *Document) error

	// Get retrieves a document by ID including its line items in insertion order
	Get(ctx context.Context, id string) (*Document, error)

	// Update updates a document, replacing its entire line item set
	Update(ctx context.Context, doc *Document) error

	// List retrieves documents based on filter criteria
	List(ctx context.Context, filter *types.DocumentFilter) ([]*Document, error)

	// Count returns the total count of documents based on filter criteria
	Count(ctx context.Context, filter *types.DocumentFilter) (int, error)

	// NumberExists reports whether a document of the given kind already
	// uses the number
	NumberExists(ctx context.Context, kind types.DocumentKind, number string) (bool, error)
}
