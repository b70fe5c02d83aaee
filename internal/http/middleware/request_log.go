package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/staffing-backend/internal/platform/ctxutil"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
)

// RequestLogger writes one line per request once the handler chain finishes.
// Server errors log at error level and client errors at warn.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	log = log.With("component", "http")
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		status := c.Writer.Status()
		kv := []interface{}{
			"method", c.Request.Method,
			"route", routeOf(c),
			"status", status,
			"bytes", c.Writer.Size(),
			"latency_ms", time.Since(began).Milliseconds(),
		}
		if td := ctxutil.GetTraceData(c.Request.Context()); td != nil {
			kv = append(kv, "request_id", td.RequestID, "trace_id", td.TraceID)
		}
		if last := c.Errors.Last(); last != nil {
			kv = append(kv, "error", last.Err)
		}

		switch {
		case status >= 500:
			log.Error("request failed", kv...)
		case status >= 400:
			log.Warn("request rejected", kv...)
		default:
			log.Info("request served", kv...)
		}
	}
}

// routeOf prefers the registered route pattern so ids do not explode
// cardinality in logs and metrics.
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
