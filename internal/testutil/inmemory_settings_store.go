package testutil

import (
	"context"
	"sync"

	"github.com/digitalnexcode/invoiceflow/internal/domain/settings"
)

// InMemorySettingsStore is an in-memory implementation of the settings repository
type InMemorySettingsStore struct {
	mu       sync.Mutex
	byUserID map[string]*settings.Settings
}

func NewInMemorySettingsStore() *InMemorySettingsStore {
	return &InMemorySettingsStore{
		byUserID: make(map[string]*settings.Settings),
	}
}

func (s *InMemorySettingsStore) GetByUserID(ctx context.Context, userID string) (*settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, exists := s.byUserID[userID]
	if !exists {
		return nil, settings.ErrSettingsNotFound
	}
	cp := *row
	return &cp, nil
}

func (s *InMemorySettingsStore) Upsert(ctx context.Context, row *settings.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *row
	s.byUserID[row.UserID] = &cp
	return nil
}
