package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes fits a manual log with a few hundred exercise entries.
const DefaultMaxBodyBytes = 1 << 20

// DrainAndCloseRequest caps the request body at maxBodyBytes (no cap when
// <= 0). After the handler returns, whatever it left unread is drained and
// the body closed, so the connection can be reused.
func DrainAndCloseRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}

			next.ServeHTTP(w, r)

			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
