package postgres

import (
	"context"
	"fmt"

	"github.com/digitalnexcode/invoiceflow/internal/domain/client"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/digitalnexcode/invoiceflow/internal/postgres"
	"github.com/digitalnexcode/invoiceflow/internal/types"
)

type clientRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewClientRepository(db *postgres.DB, logger *logger.Logger) client.Repository {
	return &clientRepository{db: db, logger: logger}
}

func (r *clientRepository) Get(ctx context.Context, id string) (*client.Client, error) {
	return r.getOne(ctx, "SELECT * FROM clients WHERE id = :key AND status = :status", id)
}

func (r *clientRepository) GetByEmail(ctx context.Context, email string) (*client.Client, error) {
	return r.getOne(ctx, "SELECT * FROM clients WHERE email = :key AND status = :status", email)
}

func (r *clientRepository) getOne(ctx context.Context, query string, key string) (*client.Client, error) {
	var c client.Client
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"key":    key,
		"status": types.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, client.ErrClientNotFound
	}

	if err := rows.StructScan(&c); err != nil {
		return nil, fmt.Errorf("failed to scan client: %w", err)
	}

	return &c, nil
}

func (r *clientRepository) Upsert(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (
			id, name, email, phone, company,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :name, :email, :phone, :company,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			company = EXCLUDED.company,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by`

	r.logger.Debugw("upserting client", "email", c.Email)

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("failed to upsert client: %w", err)
	}
	return nil
}

func (r *clientRepository) Update(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients SET
			name = :name,
			email = :email,
			phone = :phone,
			company = :company,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND status = '` + string(types.StatusActive) + `'`

	r.logger.Debugw("updating client", "client_id", c.ID)

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

func (r *clientRepository) List(ctx context.Context) ([]*client.Client, error) {
	rows, err := r.db.NamedQueryContext(ctx,
		"SELECT * FROM clients WHERE status = :status ORDER BY name ASC",
		map[string]interface{}{"status": types.StatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.StructScan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, &c)
	}

	return clients, nil
}
