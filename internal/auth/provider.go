package auth

import (
	"context"

	"github.com/digitalnexcode/invoiceflow/internal/config"
)

// Claims are the verified fields extracted from an access token
type Claims struct {
	UserID string
	Email  string
}

type AuthRequest struct {
	Email    string
	Password string
}

type AuthResponse struct {
	AuthToken string
	UserID    string
}

// Provider verifies access tokens and proxies account operations to the
// identity backend.
type Provider interface {
	SignUp(ctx context.Context, req AuthRequest) (*AuthResponse, error)
	Login(ctx context.Context, req AuthRequest) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

func NewProvider(cfg *config.Configuration) Provider {
	return NewSupabaseAuth(cfg)
}
