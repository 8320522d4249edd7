package settings

import (
	"context"
)

// Repository defines the interface for user settings persistence
type Repository interface {
	// GetByUserID retrieves the settings row for a user
	GetByUserID(ctx context.Context, userID string) (*Settings, error)

	// Upsert creates or replaces the settings row for a user
	Upsert(ctx context.Context, settings *Settings) error
}
