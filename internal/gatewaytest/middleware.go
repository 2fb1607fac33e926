package gatewaytest

import (
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-client/utils"
)

// RequestLoggerMiddleware logs requests handled by the fake gateway with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Debug("fake gateway request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}
