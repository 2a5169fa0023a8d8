// Package proxy implements a reverse proxy that only forwards requests
// carrying valid Hawk credentials.
package proxy

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vitalvas/hawkauth/hawk"
	"github.com/vitalvas/hawkauth/internal/config"
	"github.com/vitalvas/hawkauth/internal/credstore"
	"github.com/vitalvas/hawkauth/muxhandlers"
)

// ErrInvalidUpstream is returned when the upstream is not an absolute URL.
var ErrInvalidUpstream = errors.New("proxy: upstream must be an absolute URL")

// Proxy authenticates requests with Hawk and forwards the accepted ones to
// a single upstream.
type Proxy struct {
	handler  http.Handler
	strategy *hawk.Strategy
}

// New builds a Proxy for cfg, resolving credentials through resolver.
func New(cfg *config.Config, resolver hawk.Resolver, logger logrus.FieldLogger) (*Proxy, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	target, err := url.Parse(cfg.Upstream)
	if err != nil {
		return nil, fmt.Errorf("proxy: parsing upstream: %w", err)
	}

	if target.Scheme == "" || target.Host == "" {
		return nil, ErrInvalidUpstream
	}

	strategy, err := hawk.New(hawk.Config{Bewit: cfg.Bewit, Resolver: resolver})
	if err != nil {
		return nil, err
	}

	authenticate, err := hawk.Middleware(hawk.MiddlewareConfig{
		Authenticator: strategy,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}

	rawBody, err := muxhandlers.RawBodyMiddleware(muxhandlers.RawBodyConfig{MaxBytes: cfg.MaxBodyBytes})
	if err != nil {
		return nil, err
	}

	reverseProxy := httputil.NewSingleHostReverseProxy(target)
	reverseProxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		muxhandlers.LoggerFromContext(r.Context(), logger).
			WithError(err).
			WithField("upstream", target.String()).
			Error("upstream request failed")
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
	}

	forward := forwardPrincipal(cfg.UserHeader, strategy.Mode() == hawk.ModeBewit, reverseProxy)

	handler := muxhandlers.Chain(
		muxhandlers.Mount(cfg.MountPrefix, muxhandlers.Chain(forward, rawBody, authenticate)),
		muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{TrustIncoming: true}),
		muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{Logger: logger}),
	)

	logger.
		WithField("upstream", target.String()).
		WithField("mode", strategy.Mode().String()).
		WithField("mount_prefix", cfg.MountPrefix).
		Info("hawk proxy configured")

	return &Proxy{handler: handler, strategy: strategy}, nil
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.handler.ServeHTTP(w, r)
}

// Mode returns the Hawk mode the proxy enforces.
func (p *Proxy) Mode() hawk.Mode {
	return p.strategy.Mode()
}

// forwardPrincipal replaces any client-supplied user header with the
// authenticated user before handing the request to next. With stripBewit
// set, the bewit query parameter is removed so the token never reaches the
// upstream.
func forwardPrincipal(header string, stripBewit bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = r.Clone(r.Context())

		if stripBewit {
			r.URL.RawQuery = withoutBewit(r.URL.RawQuery)
		}

		if header != "" {
			r.Header.Del(header)

			if p, ok := hawk.PrincipalFromContext(r.Context()); ok {
				r.Header.Set(header, userID(p.User))
			}
		}

		next.ServeHTTP(w, r)
	})
}

// withoutBewit drops every bewit parameter from rawQuery and keeps the rest
// as sent.
func withoutBewit(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	params := strings.Split(rawQuery, "&")
	kept := params[:0]

	for _, param := range params {
		if key, _, _ := strings.Cut(param, "="); key == "bewit" {
			continue
		}

		kept = append(kept, param)
	}

	return strings.Join(kept, "&")
}

func userID(user any) string {
	switch u := user.(type) {
	case *credstore.User:
		return u.ID
	case string:
		return u
	case fmt.Stringer:
		return u.String()
	default:
		return fmt.Sprint(u)
	}
}
