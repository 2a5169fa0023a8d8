package muxhandlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
)

// ErrInvalidMaxSize is returned when RawBodyConfig.MaxBytes is negative.
var ErrInvalidMaxSize = errors.New("raw body: max size must not be negative")

// DefaultRawBodyMaxBytes is the limit used when RawBodyConfig.MaxBytes is zero.
const DefaultRawBodyMaxBytes int64 = 1 << 20

type rawBodyKey struct{}

// rawBody distinguishes a captured empty body from no capture at all.
type rawBody struct {
	data []byte
}

// RawBody returns the body bytes captured by RawBodyMiddleware. The boolean
// is false when nothing was captured; a captured empty body yields a
// non-nil empty slice and true.
func RawBody(r *http.Request) ([]byte, bool) {
	rb, ok := r.Context().Value(rawBodyKey{}).(*rawBody)
	if !ok {
		return nil, false
	}

	return rb.data, true
}

// WithRawBody returns a shallow copy of r carrying body as its captured raw
// body. The request body itself is left untouched.
func WithRawBody(r *http.Request, body []byte) *http.Request {
	if body == nil {
		body = []byte{}
	}

	return r.WithContext(context.WithValue(r.Context(), rawBodyKey{}, &rawBody{data: body}))
}

// RawBodyConfig configures the raw body capture middleware.
type RawBodyConfig struct {
	// MaxBytes is the maximum body size that will be buffered. Larger
	// bodies are answered with 413 Request Entity Too Large. Defaults to
	// DefaultRawBodyMaxBytes when zero.
	MaxBytes int64
}

// RawBodyMiddleware returns a middleware that buffers the body of POST and
// PUT requests, exposes it through RawBody and hands downstream handlers a
// fresh reader over the same bytes. Other methods pass through untouched.
//
// It returns ErrInvalidMaxSize if MaxBytes is negative.
func RawBodyMiddleware(cfg RawBodyConfig) (MiddlewareFunc, error) {
	if cfg.MaxBytes < 0 {
		return nil, ErrInvalidMaxSize
	}

	maxBytes := cfg.MaxBytes
	if maxBytes == 0 {
		maxBytes = DefaultRawBodyMaxBytes
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost && r.Method != http.MethodPut {
				next.ServeHTTP(w, r)
				return
			}

			var data []byte
			if r.Body != nil && r.Body != http.NoBody {
				var err error
				data, err = io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
				if err != nil {
					var maxErr *http.MaxBytesError
					if errors.As(err, &maxErr) {
						http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
						return
					}

					http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
					return
				}
			}

			r = WithRawBody(r, data)
			r.Body = io.NopCloser(bytes.NewReader(data))

			next.ServeHTTP(w, r)
		})
	}, nil
}
