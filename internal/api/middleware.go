package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"eld-trip-service/internal/platform/obs"

	"github.com/google/uuid"
)

// statusWriter captures the final HTTP status code and number of bytes written.
// This helps distinguish "handler returned 200" from "client received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// loggingMiddleware tags each request with an id and logs end-to-end
// duration and response size for basic observability.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), obs.RequestIDKey, reqID)

		sw := &statusWriter{
			ResponseWriter: w,
			status:         0,
		}

		next.ServeHTTP(sw, r.WithContext(ctx))

		duration := time.Since(start).Milliseconds()

		log.Printf(
			"req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
			reqID, r.Method, r.URL.RequestURI(), sw.status, sw.bytes, duration,
		)
	})
}
