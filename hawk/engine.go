package hawk

import (
	"mime"
	"net/http"
	"strings"

	hawkgo "github.com/tent/hawk-go"
)

// LookupFunc is the credentials callback handed to an Engine. It receives
// the engine credentials with ID set and fills in Key and Hash.
type LookupFunc func(c *hawkgo.Credentials) error

// hawkgoLookup converts lookup to the callback shape hawk-go expects.
func hawkgoLookup(lookup LookupFunc) func(*hawkgo.Credentials) error {
	return func(c *hawkgo.Credentials) error { return lookup(c) }
}

// Engine verifies Hawk MACs. Both entry points call lookup for the claimed
// id and return the ext data of a valid request, or an error.
type Engine interface {
	// AuthenticateHeader verifies the Authorization header of r.
	AuthenticateHeader(r *http.Request, lookup LookupFunc, opts Options) (string, error)

	// AuthenticateBewit verifies the bewit query parameter of r.
	AuthenticateBewit(r *http.Request, lookup LookupFunc, opts Options) (string, error)
}

// DefaultEngine returns the Engine backed by github.com/tent/hawk-go. Nonces
// are not tracked; replay protection beyond the timestamp window is left to
// the deployment.
func DefaultEngine() Engine {
	return hawkgoEngine{}
}

type hawkgoEngine struct{}

func (hawkgoEngine) AuthenticateHeader(r *http.Request, lookup LookupFunc, opts Options) (string, error) {
	if r.Header.Get("Authorization") == "" {
		return "", ErrNoAuthorization
	}

	auth, err := hawkgo.NewAuthFromRequest(r, hawkgoLookup(lookup), nil)
	if err != nil {
		return "", err
	}

	if err := auth.Valid(); err != nil {
		return "", err
	}

	if opts.HasPayload {
		if len(auth.Hash) == 0 {
			return "", ErrMissingPayloadHash
		}

		h := auth.PayloadHash(mediaType(r.Header.Get("Content-Type")))
		h.Write(opts.Payload)

		if !auth.ValidHash(h) {
			return "", ErrPayloadMismatch
		}
	}

	return auth.Ext, nil
}

func (hawkgoEngine) AuthenticateBewit(r *http.Request, lookup LookupFunc, _ Options) (string, error) {
	if r.Header.Get("Authorization") != "" {
		return "", ErrMultipleAuthentications
	}

	if r.URL.Query().Get("bewit") == "" {
		return "", ErrNoBewit
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return "", ErrBewitMethod
	}

	auth, err := hawkgo.NewAuthFromRequest(r, hawkgoLookup(lookup), nil)
	if err != nil {
		return "", err
	}

	if err := auth.Valid(); err != nil {
		return "", err
	}

	return auth.Ext, nil
}

// mediaType returns the Content-Type without parameters, lowercased and
// trimmed, as Hawk payload hashing expects.
func mediaType(contentType string) string {
	if contentType == "" {
		return ""
	}

	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		return mt
	}

	mt, _, _ := strings.Cut(contentType, ";")

	return strings.ToLower(strings.TrimSpace(mt))
}
