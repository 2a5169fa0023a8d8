package hawk

import "errors"

// Construction errors.
var (
	// ErrNoResolver is returned by New when Config has no Resolver.
	ErrNoResolver = errors.New("hawk: resolver must not be nil")

	// ErrNoAuthenticator is returned by Middleware when MiddlewareConfig
	// has no Authenticator.
	ErrNoAuthenticator = errors.New("hawk: authenticator must not be nil")
)

// Credential errors.
var (
	// ErrUnknownCredentials is returned when the resolver reports that no
	// credentials exist for the claimed id.
	ErrUnknownCredentials = errors.New("hawk: unknown credentials")

	// ErrUnknownAlgorithm is returned when a credentials record names a MAC
	// algorithm that is not supported.
	ErrUnknownAlgorithm = errors.New("hawk: unknown algorithm")

	// ErrNoCredentialsID is returned by the signing helpers when no key
	// identifier is configured.
	ErrNoCredentialsID = errors.New("hawk: credentials id must not be empty")

	// ErrBewitURL is returned by NewBewit and BewitURL when the URI is not
	// an absolute http or https URL.
	ErrBewitURL = errors.New("hawk: bewit uri must be an absolute http or https URL")

	// ErrBodyNotReplayable is returned by Transport when a payload hash is
	// requested for a body that has no GetBody.
	ErrBodyNotReplayable = errors.New("hawk: request body cannot be replayed for payload hashing")
)

// Request shape errors.
var (
	// ErrNoAuthorization is returned in standard mode when the request has
	// no Authorization header.
	ErrNoAuthorization = errors.New("hawk: missing Authorization header")

	// ErrNoBewit is returned in bewit mode when the request has no bewit
	// query parameter.
	ErrNoBewit = errors.New("hawk: missing bewit parameter")

	// ErrMultipleAuthentications is returned in bewit mode when the request
	// also carries an Authorization header.
	ErrMultipleAuthentications = errors.New("hawk: multiple authentications")

	// ErrBewitMethod is returned when a bewit is presented on a method
	// other than GET or HEAD.
	ErrBewitMethod = errors.New("hawk: bewit only allows GET and HEAD requests")
)

// Payload errors.
var (
	// ErrMissingPayloadHash is returned when payload verification applies
	// but the Authorization header carries no hash attribute.
	ErrMissingPayloadHash = errors.New("hawk: missing required payload hash")

	// ErrPayloadMismatch is returned when the payload does not match the
	// hash carried in the Authorization header.
	ErrPayloadMismatch = errors.New("hawk: payload hash mismatch")
)

// ResolutionError reports that the application resolver failed. It is the
// error seen by the engine; the outcome carries the resolver's original
// error instead.
type ResolutionError struct {
	// ID is the claimed key identifier being resolved.
	ID string

	// Err is the error returned by the resolver.
	Err error
}

func (e *ResolutionError) Error() string {
	return "hawk: resolving credentials for " + e.ID + ": " + e.Err.Error()
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
