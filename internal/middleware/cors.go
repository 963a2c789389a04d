package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	corsAllowHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, MCP-Protocol-Version, MCP-Session-Id"
	corsAllowMethods = "POST, GET, OPTIONS, DELETE"
	corsMaxAge       = "600"
)

var defaultAllowedOrigins = []string{
	"https://gymdash.2beens.online",
	"http://localhost:3000",
	"http://localhost:8080",
	"test",
}

// trusted non-browser clients, identified by user agent
var allowedUserAgentPrefixes = []string{
	"GymDash/",
	"curl/",
	"test-agent",
}

// Cors allows the dashboard origins plus extraOrigins (from the config).
// The MCP endpoint is open to any origin since MCP clients often send none.
func Cors(extraOrigins ...string) func(next http.Handler) http.Handler {
	allowedOrigins := make(map[string]bool, len(defaultAllowedOrigins)+len(extraOrigins))
	for _, origin := range append(defaultAllowedOrigins, extraOrigins...) {
		if origin = strings.TrimRight(strings.TrimSpace(origin), "/"); origin != "" {
			allowedOrigins[origin] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			isMcp := strings.HasPrefix(r.URL.Path, "/mcp")

			if !allowedOrigins[origin] && !trustedUserAgent(r.Header.Get("User-Agent")) && !isMcp {
				log.Warnf("CORS: origin not allowed for path [%s] and origin [%s]", r.URL.Path, origin)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			allowOrigin := origin
			if allowOrigin == "" && isMcp {
				allowOrigin = "*"
			}
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Max-Age", corsMaxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func trustedUserAgent(userAgent string) bool {
	for _, prefix := range allowedUserAgentPrefixes {
		if strings.HasPrefix(userAgent, prefix) {
			return true
		}
	}
	return false
}
