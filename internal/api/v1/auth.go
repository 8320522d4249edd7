package v1

import (
	"net/http"

	"github.com/digitalnexcode/invoiceflow/internal/api/dto"
	"github.com/digitalnexcode/invoiceflow/internal/auth"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	provider auth.Provider
	log      *logger.Logger
}

func NewAuthHandler(provider auth.Provider, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		log:      log,
	}
}

// SignUp handles POST /v1/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	resp, err := h.provider.SignUp(c.Request.Context(), auth.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Errorw("sign up failed", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Failed to sign up").
			Mark(ierr.ErrValidation))
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		UserID: resp.UserID,
		Token:  resp.AuthToken,
	})
}

// Me handles GET /v1/auth/me and reports the authenticated identity
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, dto.MeResponse{
		UserID: types.GetUserID(ctx),
		Email:  types.GetUserEmail(ctx),
	})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	resp, err := h.provider.Login(c.Request.Context(), auth.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Errorw("login failed", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		UserID: resp.UserID,
		Token:  resp.AuthToken,
	})
}
