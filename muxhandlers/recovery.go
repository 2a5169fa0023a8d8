package muxhandlers

import (
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// RecoveryConfig configures the Recovery middleware behaviour.
type RecoveryConfig struct {
	// Logger receives one error entry per recovered panic. When nil, the
	// logrus standard logger is used.
	Logger logrus.FieldLogger

	// Stack, when true, attaches the goroutine stack to the log entry.
	Stack bool
}

// RecoveryMiddleware returns a middleware that recovers from panics in
// downstream handlers. When a panic occurs it returns 500 Internal Server
// Error to the client and logs the recovered value.
func RecoveryMiddleware(cfg RecoveryConfig) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				entry := LoggerFromContext(r.Context(), cfg.Logger).
					WithField("panic", rec).
					WithField("method", r.Method).
					WithField("path", r.URL.Path)
				if cfg.Stack {
					entry = entry.WithField("stack", string(debug.Stack()))
				}
				entry.Error("recovered from handler panic")

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
