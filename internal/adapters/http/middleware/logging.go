package middleware

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/products-api/internal/core/logger"
)

// Only error bodies are kept, and only up to this size.
const maxErrorBodySize = 4 * 1024

var bufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// errorBodyWriter tees the response into body once the status is 4xx or 5xx.
type errorBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *errorBodyWriter) keep(n int) bool {
	return w.Status() >= 400 && w.body.Len()+n <= maxErrorBodySize
}

func (w *errorBodyWriter) Write(b []byte) (int, error) {
	if w.keep(len(b)) {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *errorBodyWriter) WriteString(s string) (int, error) {
	if w.keep(len(s)) {
		w.body.WriteString(s)
	}
	return w.ResponseWriter.WriteString(s)
}

func levelForStatus(status int) logger.LogLevel {
	switch {
	case status >= 500:
		return logger.LogLevelError
	case status >= 400:
		return logger.LogLevelWarn
	default:
		return logger.LogLevelInfo
	}
}

// LogRequest emits one record per request. Success bodies carry product data
// and are never logged; error bodies are attached for diagnosis.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		buf := bufferPool.Get().(*bytes.Buffer)
		buf.Reset()
		defer bufferPool.Put(buf)

		writer := &errorBodyWriter{ResponseWriter: c.Writer, body: buf}
		c.Writer = writer

		c.Next()

		status := c.Writer.Status()
		attrs := map[string]any{
			"http.method":        c.Request.Method,
			"http.path":          c.Request.URL.Path,
			"http.route":         c.FullPath(),
			"http.status_code":   status,
			"http.duration_ms":   time.Since(start).Milliseconds(),
			"http.client_ip":     c.ClientIP(),
			"http.response_size": c.Writer.Size(),
		}
		if c.Request.ContentLength > 0 {
			attrs["http.request_size"] = c.Request.ContentLength
		}
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			attrs["http.idempotency_key"] = key
		}
		for _, param := range c.Params {
			attrs["http.param."+param.Key] = param.Value
		}
		if buf.Len() > 0 && strings.Contains(c.Writer.Header().Get("Content-Type"), "application/json") {
			attrs["http.response_body"] = buf.String()
		}

		logger.Log(c.Request.Context(), logger.LogEntry{
			Level:      levelForStatus(status),
			Message:    "HTTP Request",
			Attributes: attrs,
			Timestamp:  time.Now(),
		})
	}
}
