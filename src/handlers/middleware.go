package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/username/autaxy/src/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and a request-scoped logger.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		reqLogger := logger.L.With("requestID", requestID)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context(), reqLogger)))
		reqLogger.Debug("HTTP request served", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
