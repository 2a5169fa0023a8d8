package hawk

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vitalvas/hawkauth/muxhandlers"
)

type principalKey struct{}

// Principal is the authenticated identity stored in the request context by
// Middleware.
type Principal struct {
	// Strategy is the name of the authenticator that produced the
	// principal, when it has one.
	Strategy string

	// User is the application user from the credentials record.
	User any

	// Ext is the ext data of the verified request.
	Ext string
}

// PrincipalFromContext returns the principal stored by Middleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// ContextWithPrincipal returns a copy of ctx carrying p.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// MiddlewareConfig configures the server-side Hawk middleware.
type MiddlewareConfig struct {
	// Authenticator decides each request. Required.
	Authenticator Authenticator

	// OnFailure is called for rejected requests. When nil, a 401
	// Unauthorized response with a Hawk challenge is sent.
	OnFailure func(w http.ResponseWriter, r *http.Request, err error)

	// OnError is called when authentication errored. When nil, a 500
	// Internal Server Error response is sent.
	OnError func(w http.ResponseWriter, r *http.Request, err error)

	// Logger receives rejected and errored attempts. Defaults to the
	// logrus standard logger.
	Logger logrus.FieldLogger
}

// Middleware returns a muxhandlers.MiddlewareFunc that authenticates every
// request with cfg.Authenticator. Authenticated requests continue with
// their Principal in the context.
//
// It returns ErrNoAuthenticator if cfg.Authenticator is nil.
func Middleware(cfg MiddlewareConfig) (muxhandlers.MiddlewareFunc, error) {
	if cfg.Authenticator == nil {
		return nil, ErrNoAuthenticator
	}

	authenticator := cfg.Authenticator

	strategy := ""
	if named, ok := authenticator.(interface{ Name() string }); ok {
		strategy = named.Name()
	}

	onFailure := cfg.OnFailure
	if onFailure == nil {
		onFailure = defaultOnFailure
	}

	onError := cfg.OnError
	if onError == nil {
		onError = defaultOnError
	}

	logger := cfg.Logger

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			outcome := authenticator.Authenticate(r)

			switch outcome.Result {
			case ResultAuthenticated:
				p := Principal{Strategy: strategy, User: outcome.User, Ext: outcome.Ext}
				next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(r.Context(), p)))

			case ResultErrored:
				muxhandlers.LoggerFromContext(r.Context(), logger).
					WithField("strategy", strategy).
					WithField("path", r.URL.Path).
					WithError(outcome.Err).
					Error("authentication errored")
				onError(w, r, outcome.Err)

			default:
				muxhandlers.LoggerFromContext(r.Context(), logger).
					WithField("strategy", strategy).
					WithField("path", r.URL.Path).
					WithError(outcome.Err).
					Warn("authentication rejected")
				onFailure(w, r, outcome.Err)
			}
		})
	}, nil
}

// defaultOnFailure writes a 401 Unauthorized response with a Hawk
// challenge and no body.
func defaultOnFailure(w http.ResponseWriter, _ *http.Request, _ error) {
	w.Header().Set("WWW-Authenticate", "Hawk")
	w.WriteHeader(http.StatusUnauthorized)
}

// defaultOnError writes a 500 Internal Server Error response.
func defaultOnError(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
