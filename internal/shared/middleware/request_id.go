package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the gin context key holding the request ID.
	RequestIDKey = "request_id"

	// RequestIDHeader is read from the request and echoed on the response.
	RequestIDHeader = "X-Request-ID"
)

// RequestID keeps an incoming X-Request-ID or generates a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
