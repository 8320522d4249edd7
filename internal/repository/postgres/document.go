package postgres

import (
	"context"
	"fmt"

	"github.com/digitalnexcode/invoiceflow/internal/domain/document"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/digitalnexcode/invoiceflow/internal/postgres"
	"github.com/digitalnexcode/invoiceflow/internal/types"
)

type documentRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewDocumentRepository(db *postgres.DB, logger *logger.Logger) document.Repository {
	return &documentRepository{db: db, logger: logger}
}

// lineItemRow pairs a line item with its position inside the document so
// reads come back in insertion order.
type lineItemRow struct {
	*document.LineItem
	Position int `db:"position"`
}

func (r *documentRepository) Create(ctx context.Context, doc *document.Document) error {
	return r.db.WithTx(ctx, func(ctx context.Context) error {
		query := `
			INSERT INTO documents (
				id, kind, number, doc_status, client_name, client_email, client_phone,
				client_company, company_details, logo, description, currency, issue_date,
				due_date, notes, show_monthly, amount,
				status, created_at, updated_at, created_by, updated_by
			) VALUES (
				:id, :kind, :number, :doc_status, :client_name, :client_email, :client_phone,
				:client_company, :company_details, :logo, :description, :currency, :issue_date,
				:due_date, :notes, :show_monthly, :amount,
				:status, :created_at, :updated_at, :created_by, :updated_by
			)`

		r.logger.Debugw("creating document",
			"document_id", doc.ID,
			"kind", doc.Kind,
			"number", doc.Number,
		)

		if _, err := r.db.NamedExecContext(ctx, query, doc); err != nil {
			return fmt.Errorf("failed to create document: %w", err)
		}

		return r.insertLineItems(ctx, doc)
	})
}

func (r *documentRepository) insertLineItems(ctx context.Context, doc *document.Document) error {
	query := `
		INSERT INTO line_items (
			id, document_id, position, name, description, quantity, unit_price, tax_percent,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :document_id, :position, :name, :description, :quantity, :unit_price, :tax_percent,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	for i, item := range doc.LineItems {
		row := lineItemRow{LineItem: item, Position: i}
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("failed to create line item: %w", err)
		}
	}
	return nil
}

func (r *documentRepository) Get(ctx context.Context, id string) (*document.Document, error) {
	var doc document.Document
	rows, err := r.db.NamedQueryContext(ctx,
		"SELECT * FROM documents WHERE id = :id AND status != :deleted",
		map[string]interface{}{
			"id":      id,
			"deleted": types.StatusDeleted,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, document.ErrDocumentNotFound
	}

	if err := rows.StructScan(&doc); err != nil {
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}

	items, err := r.getLineItems(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	doc.LineItems = items

	return &doc, nil
}

func (r *documentRepository) getLineItems(ctx context.Context, documentID string) ([]*document.LineItem, error) {
	rows, err := r.db.NamedQueryContext(ctx,
		"SELECT * FROM line_items WHERE document_id = :document_id ORDER BY position ASC",
		map[string]interface{}{"document_id": documentID})
	if err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}
	defer rows.Close()

	var items []*document.LineItem
	for rows.Next() {
		var row lineItemRow
		row.LineItem = &document.LineItem{}
		if err := rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, row.LineItem)
	}
	return items, nil
}

func (r *documentRepository) Update(ctx context.Context, doc *document.Document) error {
	return r.db.WithTx(ctx, func(ctx context.Context) error {
		query := `
			UPDATE documents SET
				number = :number,
				doc_status = :doc_status,
				client_name = :client_name,
				client_email = :client_email,
				client_phone = :client_phone,
				client_company = :client_company,
				company_details = :company_details,
				logo = :logo,
				description = :description,
				currency = :currency,
				issue_date = :issue_date,
				due_date = :due_date,
				notes = :notes,
				show_monthly = :show_monthly,
				amount = :amount,
				updated_at = :updated_at,
				updated_by = :updated_by
			WHERE id = :id AND status != '` + string(types.StatusDeleted) + `'`

		r.logger.Debugw("updating document",
			"document_id", doc.ID,
			"number", doc.Number,
		)

		result, err := r.db.NamedExecContext(ctx, query, doc)
		if err != nil {
			return fmt.Errorf("failed to update document: %w", err)
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return document.ErrDocumentNotFound
		}

		// The document owns its line items outright. Replace the whole set
		// rather than diffing rows.
		if _, err := r.db.NamedExecContext(ctx,
			"DELETE FROM line_items WHERE document_id = :document_id",
			map[string]interface{}{"document_id": doc.ID}); err != nil {
			return fmt.Errorf("failed to clear line items: %w", err)
		}

		return r.insertLineItems(ctx, doc)
	})
}

func (r *documentRepository) List(ctx context.Context, filter *types.DocumentFilter) ([]*document.Document, error) {
	query := `SELECT * FROM documents WHERE status != :deleted` +
		filterClauses(filter) +
		` ORDER BY created_at DESC LIMIT :limit OFFSET :offset`

	rows, err := r.db.NamedQueryContext(ctx, query, filterParams(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []*document.Document
	for rows.Next() {
		var doc document.Document
		if err := rows.StructScan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, &doc)
	}

	for _, doc := range docs {
		items, err := r.getLineItems(ctx, doc.ID)
		if err != nil {
			return nil, err
		}
		doc.LineItems = items
	}

	return docs, nil
}

func (r *documentRepository) Count(ctx context.Context, filter *types.DocumentFilter) (int, error) {
	query := `SELECT COUNT(*) FROM documents WHERE status != :deleted` + filterClauses(filter)

	rows, err := r.db.NamedQueryContext(ctx, query, filterParams(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, fmt.Errorf("failed to scan count: %w", err)
		}
	}
	return count, nil
}

func (r *documentRepository) NumberExists(ctx context.Context, kind types.DocumentKind, number string) (bool, error) {
	rows, err := r.db.NamedQueryContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE kind = :kind AND number = :number AND status != :deleted",
		map[string]interface{}{
			"kind":    kind,
			"number":  number,
			"deleted": types.StatusDeleted,
		})
	if err != nil {
		return false, fmt.Errorf("failed to check document number: %w", err)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return false, fmt.Errorf("failed to scan count: %w", err)
		}
	}
	return count > 0, nil
}

func filterClauses(filter *types.DocumentFilter) string {
	clause := ""
	if filter == nil {
		return clause
	}
	if filter.Kind != "" {
		clause += " AND kind = :kind"
	}
	if filter.Status != "" {
		clause += " AND doc_status = :doc_status"
	}
	if filter.ClientEmail != "" {
		clause += " AND client_email = :client_email"
	}
	return clause
}

func filterParams(filter *types.DocumentFilter) map[string]interface{} {
	params := map[string]interface{}{
		"deleted": types.StatusDeleted,
		"limit":   filter.GetLimit(),
		"offset":  filter.GetOffset(),
	}
	if filter == nil {
		return params
	}
	if filter.Kind != "" {
		params["kind"] = filter.Kind
	}
	if filter.Status != "" {
		params["doc_status"] = filter.Status
	}
	if filter.ClientEmail != "" {
		params["client_email"] = filter.ClientEmail
	}
	return params
}
