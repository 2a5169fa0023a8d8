package hawk

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	hawkgo "github.com/tent/hawk-go"
)

// SignConfig configures client-side Hawk request signing.
type SignConfig struct {
	// ID is the key identifier. Required.
	ID string

	// Key is the shared MAC key.
	Key string

	// Algorithm selects the HMAC digest. Defaults to AlgorithmSHA256.
	Algorithm Algorithm

	// Ext is optional application data covered by the MAC.
	Ext string

	// Payload, when non-nil, is hashed into the header so the server can
	// verify the body.
	Payload []byte

	// ContentType is the content type used for the payload hash. Defaults
	// to the request's Content-Type header.
	ContentType string

	// Offset shifts the timestamp, for clients that know their clock skew.
	Offset time.Duration
}

func (cfg SignConfig) credentials() (*hawkgo.Credentials, error) {
	if cfg.ID == "" {
		return nil, ErrNoCredentialsID
	}

	h, err := cfg.Algorithm.hashFunc()
	if err != nil {
		return nil, err
	}

	return &hawkgo.Credentials{ID: cfg.ID, Key: cfg.Key, Hash: h}, nil
}

// SignRequest sets a Hawk Authorization header on r. The MAC covers the
// method, request URI and host of r as they are at call time.
func SignRequest(r *http.Request, cfg SignConfig) error {
	creds, err := cfg.credentials()
	if err != nil {
		return err
	}

	target := r
	if r.URL.Scheme == "" {
		u := *r.URL
		u.Scheme = requestScheme(r)
		target = r.WithContext(r.Context())
		target.URL = &u
	}

	auth := hawkgo.NewRequestAuth(target, creds, cfg.Offset)
	auth.Ext = cfg.Ext

	if cfg.Payload != nil {
		contentType := cfg.ContentType
		if contentType == "" {
			contentType = r.Header.Get("Content-Type")
		}

		h := auth.PayloadHash(mediaType(contentType))
		h.Write(cfg.Payload)
		auth.SetHash(h)
	}

	r.Header.Set("Authorization", auth.RequestHeader())

	return nil
}

// BewitConfig configures bewit generation.
type BewitConfig struct {
	// ID is the key identifier. Required.
	ID string

	// Key is the shared MAC key.
	Key string

	// Algorithm selects the HMAC digest. Defaults to AlgorithmSHA256.
	Algorithm Algorithm

	// TTL is how long the bewit stays valid.
	TTL time.Duration

	// Ext is optional application data covered by the MAC.
	Ext string
}

// NewBewit returns a bewit token for uri. It returns ErrBewitURL unless uri
// is an absolute http or https URL.
func NewBewit(uri string, cfg BewitConfig) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBewitURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrBewitURL
	}

	creds, err := SignConfig{ID: cfg.ID, Key: cfg.Key, Algorithm: cfg.Algorithm}.credentials()
	if err != nil {
		return "", err
	}

	auth, err := hawkgo.NewURLAuth(uri, creds, cfg.TTL)
	if err != nil {
		return "", err
	}

	auth.Ext = cfg.Ext

	return auth.Bewit(), nil
}

// BewitURL returns uri with a freshly generated bewit query parameter
// appended.
func BewitURL(uri string, cfg BewitConfig) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}

	bewit, err := NewBewit(uri, cfg)
	if err != nil {
		return "", err
	}

	if u.RawQuery != "" {
		u.RawQuery += "&"
	}
	u.RawQuery += "bewit=" + url.QueryEscape(bewit)

	return u.String(), nil
}
