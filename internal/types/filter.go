package types

import (
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
)

const (
	FilterDefaultLimit = 50
	FilterMaxLimit     = 1000
)

// DocumentFilter carries the list query parameters for invoices and quotes
type DocumentFilter struct {
	Kind        DocumentKind   `form:"kind" json:"kind,omitempty"`
	Status      DocumentStatus `form:"status" json:"status,omitempty"`
	ClientEmail string         `form:"client_email" json:"client_email,omitempty"`
	Limit       *int           `form:"limit" json:"limit,omitempty"`
	Offset      *int           `form:"offset" json:"offset,omitempty"`
}

func (f *DocumentFilter) GetLimit() int {
	if f == nil || f.Limit == nil {
		return FilterDefaultLimit
	}
	return *f.Limit
}

func (f *DocumentFilter) GetOffset() int {
	if f == nil || f.Offset == nil {
		return 0
	}
	return *f.Offset
}

func (f *DocumentFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > FilterMaxLimit) {
		return ierr.NewError("invalid limit").
			WithHintf("Limit must be between 1 and %d", FilterMaxLimit).
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("invalid offset").
			WithHint("Offset must be non negative").
			Mark(ierr.ErrValidation)
	}
	if f.Kind != "" {
		if err := f.Kind.Validate(); err != nil {
			return err
		}
	}
	if f.Status != "" && f.Kind != "" {
		if err := f.Status.ValidateFor(f.Kind); err != nil {
			return err
		}
	}
	return nil
}
