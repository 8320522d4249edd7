package dto

import (
	"context"
	"time"

	"github.com/digitalnexcode/invoiceflow/internal/domain/client"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/digitalnexcode/invoiceflow/internal/validator"
)

type CreateClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// UpdateClientRequest carries the full replacement contact details,
// matching the update semantics of documents.
type UpdateClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type ClientResponse struct {
	*client.Client
}

type ListClientsResponse struct {
	Items []*ClientResponse `json:"items"`
	Total int               `json:"total"`
}

func (r *CreateClientRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateClientRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateClientRequest) ToClient(ctx context.Context) *client.Client {
	return &client.Client{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

// Apply overwrites the contact details of an existing client
func (r *UpdateClientRequest) Apply(ctx context.Context, c *client.Client) {
	c.Name = r.Name
	c.Email = r.Email
	c.Phone = r.Phone
	c.Company = r.Company
	c.UpdatedAt = time.Now().UTC()
	c.UpdatedBy = types.GetUserID(ctx)
}
