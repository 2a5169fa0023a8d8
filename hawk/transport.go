package hawk

import (
	"io"
	"net/http"
)

// Transport is an http.RoundTripper that signs outgoing requests with a
// Hawk Authorization header.
type Transport struct {
	base        http.RoundTripper
	config      SignConfig
	hashPayload bool
}

// TransportConfig configures NewTransport.
type TransportConfig struct {
	// Sign holds the key material and signing options.
	Sign SignConfig

	// HashPayload, when true, includes a payload hash in every request.
	// Request bodies must be replayable through Request.GetBody.
	HashPayload bool
}

// NewTransport creates a signing Transport that delegates to base after
// signing each request. When base is nil, a clone of http.DefaultTransport
// is used.
func NewTransport(base *http.Transport, cfg TransportConfig) *Transport {
	var rt http.RoundTripper
	if base != nil {
		rt = base
	} else {
		rt = http.DefaultTransport.(*http.Transport).Clone()
	}

	return &Transport{
		base:        rt,
		config:      cfg.Sign,
		hashPayload: cfg.HashPayload,
	}
}

// RoundTrip signs a clone of req and delegates to the base transport.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	sign := t.config

	if t.hashPayload {
		payload := []byte{}

		if req.Body != nil && req.Body != http.NoBody {
			if req.GetBody == nil {
				return nil, ErrBodyNotReplayable
			}

			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}

			payload, err = io.ReadAll(body)
			body.Close()
			if err != nil {
				return nil, err
			}

			if clone.Body, err = req.GetBody(); err != nil {
				return nil, err
			}
		}

		sign.Payload = payload
	}

	if err := SignRequest(clone, sign); err != nil {
		return nil, err
	}

	return t.base.RoundTrip(clone)
}
