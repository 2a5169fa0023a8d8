package hawk

import (
	"context"
	"sync"

	hawkgo "github.com/tent/hawk-go"
)

// Credentials is the key material and identity an application returns for
// a claimed key identifier. The core only reads it.
type Credentials struct {
	// Key is the shared MAC key.
	Key string

	// Algorithm selects the HMAC digest.
	Algorithm Algorithm

	// User is the application principal reported on success. It may be any
	// value.
	User any
}

// Lookup is the result of resolving a key identifier: either Found with a
// credentials record or NotFound. The zero Lookup is NotFound.
type Lookup struct {
	creds *Credentials
}

// Found returns a Lookup carrying c.
func Found(c Credentials) Lookup {
	return Lookup{creds: &c}
}

// NotFound returns a Lookup reporting that no usable identity exists for
// the claimed id. Identities that exist but must not authenticate are
// NotFound as well.
func NotFound() Lookup {
	return Lookup{}
}

// Credentials returns the resolved record and whether one was found.
func (l Lookup) Credentials() (Credentials, bool) {
	if l.creds == nil {
		return Credentials{}, false
	}

	return *l.creds, true
}

// Resolver maps a claimed key identifier to credentials.
//
// A non-nil error means the lookup itself failed (storage down, timeout)
// and is reported as an error outcome, never as a rejection. A nil error
// with NotFound is a rejection.
type Resolver interface {
	Resolve(ctx context.Context, id string) (Lookup, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, id string) (Lookup, error)

// Resolve calls f(ctx, id).
func (f ResolverFunc) Resolve(ctx context.Context, id string) (Lookup, error) {
	return f(ctx, id)
}

// resolution binds a Resolver to one authentication attempt. It calls the
// resolver at most once and remembers what happened so the dispatcher can
// classify the engine result.
type resolution struct {
	ctx      context.Context
	resolver Resolver

	once  sync.Once
	creds *Credentials
	err   error // resolver failure, as returned by the resolver
	ret   error // what the engine saw
}

func newResolution(ctx context.Context, resolver Resolver) *resolution {
	return &resolution{ctx: ctx, resolver: resolver}
}

// lookup is the LookupFunc handed to the engine.
func (res *resolution) lookup(c *hawkgo.Credentials) error {
	res.once.Do(func() {
		res.ret = res.resolve(c.ID)
	})

	if res.ret != nil {
		return res.ret
	}

	h, _ := res.creds.Algorithm.hashFunc()
	c.Key = res.creds.Key
	c.Hash = h

	return nil
}

func (res *resolution) resolve(id string) error {
	found, err := res.resolver.Resolve(res.ctx, id)
	if err != nil {
		res.err = err
		return &ResolutionError{ID: id, Err: err}
	}

	creds, ok := found.Credentials()
	if !ok {
		return ErrUnknownCredentials
	}

	if _, err := creds.Algorithm.hashFunc(); err != nil {
		res.err = err
		return &ResolutionError{ID: id, Err: err}
	}

	res.creds = &creds

	return nil
}

// found reports the credentials resolved during the attempt, if any.
func (res *resolution) found() (Credentials, bool) {
	if res.creds == nil {
		return Credentials{}, false
	}

	return *res.creds, true
}
