package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// Logger logs every request with its request id. The id is taken from the
// X-Request-ID header when present, generated otherwise, and echoed back.
func Logger() gin.HandlerFunc {
	log := zap.S().Named("http")
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		fields := []any{
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		}
		log.Debugw("request started", fields...)

		c.Next()

		fields = append(fields,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request failed", append(fields, "errors", c.Errors.String())...)
			return
		}
		log.Infow("request completed", fields...)
	}
}
