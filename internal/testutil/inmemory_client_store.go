package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/digitalnexcode/invoiceflow/internal/domain/client"
)

// InMemoryClientStore is an in-memory implementation of the client repository
type InMemoryClientStore struct {
	mu      sync.Mutex
	byEmail map[string]*client.Client
}

func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{
		byEmail: make(map[string]*client.Client),
	}
}

func (s *InMemoryClientStore) Get(ctx context.Context, id string) (*client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.byEmail {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, client.ErrClientNotFound
}

func (s *InMemoryClientStore) GetByEmail(ctx context.Context, email string) (*client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.byEmail[email]
	if !exists {
		return nil, client.ErrClientNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *InMemoryClientStore) Upsert(ctx context.Context, c *client.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *c
	if existing, ok := s.byEmail[c.Email]; ok {
		cp.ID = existing.ID
	}
	s.byEmail[c.Email] = &cp
	return nil
}

func (s *InMemoryClientStore) Update(ctx context.Context, c *client.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for email, existing := range s.byEmail {
		if existing.ID == c.ID {
			cp := *c
			delete(s.byEmail, email)
			s.byEmail[c.Email] = &cp
			return nil
		}
	}
	return client.ErrClientNotFound
}

func (s *InMemoryClientStore) List(ctx context.Context) ([]*client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var clients []*client.Client
	for _, c := range s.byEmail {
		cp := *c
		clients = append(clients, &cp)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].Name < clients[j].Name
	})
	return clients, nil
}
