package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// slowRequestThreshold moves finished requests from debug to warn level.
const slowRequestThreshold = 2 * time.Second

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fields := log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"route":  routeName(r),
				"ua":     r.Header.Get("User-Agent"),
			}
			log.WithFields(fields).Trace(" ====> request")

			resp := &responseWriter{w, http.StatusOK}
			begin := time.Now()
			next.ServeHTTP(resp, r)
			took := time.Since(begin)

			entry := log.WithFields(fields).WithFields(log.Fields{
				"status": resp.statusCode,
				"took":   took.String(),
			})
			if took >= slowRequestThreshold {
				entry.Warn(" <==== slow request")
				return
			}
			entry.Debug(" <==== request done")
		})
	}
}
