package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/todo-api/internal/constants"
)

const contextKeyLogger = "logger"

// RequestTracing tags every request with an id, exposes a request-scoped
// logger and logs the outcome once the handler chain finishes.
func RequestTracing(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderRequestID, requestID)

		reqLog := log.With(slog.String("request_id", requestID))
		c.Set(contextKeyLogger, reqLog)

		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if userID, ok := GetUserID(c); ok {
			attrs = append(attrs, slog.Uint64("user_id", userID))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			reqLog.Error("request completed", attrs...)
		case status >= 400:
			reqLog.Warn("request completed", attrs...)
		default:
			reqLog.Info("request completed", attrs...)
		}
	}
}

// Logger returns the request-scoped logger, or slog.Default outside a traced request.
func Logger(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(contextKeyLogger); ok {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}
