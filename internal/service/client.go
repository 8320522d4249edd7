package service

import (
	"context"
	"errors"

	"github.com/digitalnexcode/invoiceflow/internal/api/dto"
	"github.com/digitalnexcode/invoiceflow/internal/domain/client"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
)

// ClientService manages the client book. Entries arrive either directly
// through the API or as a side effect of creating documents.
type ClientService interface {
	CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, id string) (*dto.ClientResponse, error)
	UpdateClient(ctx context.Context, id string, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	ListClients(ctx context.Context) (*dto.ListClientsResponse, error)
}

type clientService struct {
	ServiceParams
}

func NewClientService(params ServiceParams) ClientService {
	return &clientService{ServiceParams: params}
}

func (s *clientService) CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ClientRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ierr.NewError("a client with this email already exists").
			WithHintf("Client with email %s is already on file", req.Email).
			Mark(ierr.ErrAlreadyExists)
	} else if !errors.Is(err, client.ErrClientNotFound) {
		return nil, ierr.WithError(err).
			WithHint("Failed to check for an existing client").
			Mark(ierr.ErrDatabase)
	}

	entry := req.ToClient(ctx)
	if err := s.ClientRepo.Upsert(ctx, entry); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to save the client").
			Mark(ierr.ErrDatabase)
	}

	s.Logger.Infow("created client", "client_id", entry.ID)

	return &dto.ClientResponse{Client: entry}, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id string, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return nil, ierr.WithError(err).
				WithHintf("Client with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load the client").
			Mark(ierr.ErrDatabase)
	}

	req.Apply(ctx, entry)

	if err := s.ClientRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return nil, ierr.WithError(err).
				WithHintf("Client with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to save the client").
			Mark(ierr.ErrDatabase)
	}

	s.Logger.Infow("updated client", "client_id", entry.ID)

	return &dto.ClientResponse{Client: entry}, nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return nil, ierr.WithError(err).
				WithHintf("Client with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load the client").
			Mark(ierr.ErrDatabase)
	}
	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) ListClients(ctx context.Context) (*dto.ListClientsResponse, error) {
	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list clients").
			Mark(ierr.ErrDatabase)
	}

	items := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, &dto.ClientResponse{Client: c})
	}

	return &dto.ListClientsResponse{
		Items: items,
		Total: len(items),
	}, nil
}
