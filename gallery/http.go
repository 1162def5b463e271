package gallery

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// HTTPLogger logs one line per request with its status and duration
func HTTPLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initialTime := time.Now()
			wr := NewStatusCodeRecorderResponseWriter(w)
			handler.ServeHTTP(wr, r)
			logger.Info("http",
				zap.Int("status", wr.Status),
				zap.String("method", r.Method),
				zap.String("path", r.URL.String()),
				zap.Duration("time", time.Since(initialTime)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

type StatusCodeRecorderResponseWriter struct {
	http.ResponseWriter
	Status int
}

func (r *StatusCodeRecorderResponseWriter) WriteHeader(status int) {
	r.Status = status
	r.ResponseWriter.WriteHeader(status)
}

func NewStatusCodeRecorderResponseWriter(w http.ResponseWriter) *StatusCodeRecorderResponseWriter {
	return &StatusCodeRecorderResponseWriter{ResponseWriter: w, Status: 200}
}
