package muxhandlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type originalURLKey struct{}

// OriginalURL returns the URL the request carried before any Mount rewrote
// its path. The boolean is false when the request was never mounted.
func OriginalURL(r *http.Request) (*url.URL, bool) {
	u, ok := r.Context().Value(originalURLKey{}).(*url.URL)
	return u, ok && u != nil
}

// WithOriginalURL returns a shallow copy of r carrying u as its
// pre-rewrite URL. An URL already recorded by an outer mount is kept.
func WithOriginalURL(r *http.Request, u *url.URL) *http.Request {
	if _, ok := OriginalURL(r); ok {
		return r
	}

	return r.WithContext(context.WithValue(r.Context(), originalURLKey{}, u))
}

// Mount returns a handler that serves requests whose path starts with
// prefix by stripping the prefix and invoking h. Requests outside the
// prefix get 404 Not Found.
//
// Unlike http.StripPrefix, the URL as received is recorded and remains
// available to h through OriginalURL.
func Mount(prefix string, h http.Handler) http.Handler {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, WithOriginalURL(r, cloneURL(r.URL)))
		})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, ok := stripPrefix(r.URL.Path, prefix)
		if !ok {
			http.NotFound(w, r)
			return
		}

		rawPath := ""
		if r.URL.RawPath != "" {
			rawPath, ok = stripPrefix(r.URL.RawPath, prefix)
			if !ok {
				http.NotFound(w, r)
				return
			}
		}

		original := cloneURL(r.URL)

		r2 := WithOriginalURL(r, original)
		r2 = r2.Clone(r2.Context())
		r2.URL.Path = path
		r2.URL.RawPath = rawPath

		h.ServeHTTP(w, r2)
	})
}

// stripPrefix removes prefix from path on a segment boundary. The result
// always starts with a slash.
func stripPrefix(path, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(path, prefix)
	if !ok {
		return "", false
	}

	switch {
	case rest == "":
		return "/", true
	case rest[0] == '/':
		return rest, true
	default:
		return "", false
	}
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}

	u2 := *u
	if u.User != nil {
		user := *u.User
		u2.User = &user
	}

	return &u2
}
