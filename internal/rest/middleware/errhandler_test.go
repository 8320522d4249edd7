package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware)
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		c.Error(ierr.NewError("broken").
			WithHint("Something specific went wrong").
			Mark(ierr.ErrValidation))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Something specific went wrong", resp.Error.Display)
	assert.Equal(t, w.Header().Get("X-Request-ID"), resp.RequestID)
	assert.NotEmpty(t, resp.RequestID)
}
