package client

import (
	"github.com/digitalnexcode/invoiceflow/internal/types"
)

// Client is one entry in the user's client book. Rows are upserted by
// email whenever a document is created for a counterparty that is not on
// file yet.
type Client struct {
	ID      string `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Phone   string `db:"phone" json:"phone,omitempty"`
	Company string `db:"company" json:"company,omitempty"`
	types.BaseModel
}

// Validate checks the required fields
func (c *Client) Validate() error {
	if c.Name == "" {
		return NewValidationError("name", "must not be empty")
	}
	if c.Email == "" {
		return NewValidationError("email", "must not be empty")
	}
	return nil
}
