package hawk

import (
	"net/http"
	"net/url"

	"github.com/vitalvas/hawkauth/muxhandlers"
)

// Options carries per-request verification options for an Engine.
type Options struct {
	// Payload is the raw request body. Only meaningful when HasPayload is
	// set.
	Payload []byte

	// HasPayload reports whether the payload hash must be verified.
	HasPayload bool
}

// normalize derives the request the engine verifies. The effective URL is
// the one the client sent: the URL recorded by muxhandlers.Mount, else the
// path and query of r.RequestURI, which routers such as http.StripPrefix
// leave untouched. POST/PUT bodies captured by muxhandlers.RawBodyMiddleware
// become the payload. r itself is never modified.
func normalize(r *http.Request) (*http.Request, Options) {
	req := r.Clone(r.Context())

	if u, ok := effectiveURL(r); ok {
		req.URL = u
		req.RequestURI = u.RequestURI()
	}

	// hawk-go picks the default port from the scheme.
	req.URL.Scheme = requestScheme(r)

	var opts Options
	if r.Method == http.MethodPost || r.Method == http.MethodPut {
		opts.Payload, opts.HasPayload = muxhandlers.RawBody(r)
	}

	return req, opts
}

func effectiveURL(r *http.Request) (*url.URL, bool) {
	if u, ok := muxhandlers.OriginalURL(r); ok {
		effective := *u
		return &effective, true
	}

	if r.RequestURI == "" {
		return nil, false
	}

	sent, err := url.ParseRequestURI(r.RequestURI)
	if err != nil {
		return nil, false
	}

	effective := *r.URL
	effective.Path = sent.Path
	effective.RawPath = sent.RawPath
	effective.RawQuery = sent.RawQuery

	return &effective, true
}

// requestScheme returns the scheme r arrived over. Server requests carry
// none in their URL, so it comes from the connection.
func requestScheme(r *http.Request) string {
	if r.URL.Scheme != "" {
		return r.URL.Scheme
	}

	if r.TLS != nil {
		return "https"
	}

	return "http"
}
