package middleware

import (
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/gin-gonic/gin"
)

// RequestIDMiddleware attaches a request ID to the context and echoes it
// back in the response headers. Incoming IDs are honored so callers can
// correlate retries.
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_REQUEST)
	}
	if requestID == "" {
		requestID = types.GenerateUUID()
	}

	ctx := types.SetRequestID(c.Request.Context(), requestID)
	c.Request = c.Request.WithContext(ctx)

	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}
