package client

import (
	"context"
)

// Repository defines the interface for client book persistence
type Repository interface {
	// Get retrieves a client by ID
	Get(ctx context.Context, id string) (*Client, error)

	// GetByEmail retrieves a client by email
	GetByEmail(ctx context.Context, email string) (*Client, error)

	// Upsert creates a client or updates the existing row with the same email
	Upsert(ctx context.Context, client *Client) error

	// Update overwrites the contact details of the client with the given ID
	Update(ctx context.Context, client *Client) error

	// List retrieves all active clients
	List(ctx context.Context) ([]*Client, error)
}
