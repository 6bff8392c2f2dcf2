package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/s2112257hs/split-it/internal/metrics"
)

// Metrics returns middleware that records a counter increment and a
// duration observation for every request. Requests are labelled by the
// mux pattern that served them rather than the raw URL so label
// cardinality stays bounded.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			pattern := r.Pattern
			if i := strings.IndexByte(pattern, ' '); i >= 0 {
				pattern = pattern[i+1:]
			}
			if pattern == "" {
				pattern = "unmatched"
			}

			m.ObserveRequest(r.Method, pattern, sw.status, time.Since(start))
		})
	}
}
