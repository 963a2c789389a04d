package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/gymdash/internal/telemetry/metrics"
	"github.com/2beens/gymdash/pkg"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

const panicResponse = `{"error":"internal server error"}`

// PanicRecovery turns a handler panic into a JSON 500. The panic is logged
// with its stack, counted, and reported to sentry when a client is bound.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				client, _ := pkg.ReadUserIP(r)
				log.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"client": client,
				}).Errorf("http: panic serving request: %v\n%s", recovered, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}

				hub := sentry.CurrentHub()
				if hub.Client() != nil {
					hub.RecoverWithContext(r.Context(), fmt.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, recovered))
				}

				pkg.WriteResponse(w, pkg.ContentType.JSON, panicResponse, http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
