package hawk

import "net/http"

// Result is the terminal state of one authentication attempt.
type Result int

const (
	// ResultRejected means the request did not prove a valid identity.
	// It is the zero value.
	ResultRejected Result = iota

	// ResultAuthenticated means the request was verified.
	ResultAuthenticated

	// ResultErrored means authentication could not be decided because
	// the resolver failed.
	ResultErrored
)

// String returns the lowercase name of the result.
func (r Result) String() string {
	switch r {
	case ResultAuthenticated:
		return "authenticated"
	case ResultRejected:
		return "rejected"
	case ResultErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result reported for one request.
type Outcome struct {
	Result Result

	// User is the principal from the resolved credentials. Only set when
	// Result is ResultAuthenticated.
	User any

	// Ext is the ext data carried by the verified header or bewit.
	Ext string

	// Err is why the request was rejected or errored. Errors from the
	// engine and the resolver are passed through unmodified.
	Err error
}

// Authenticated reports whether o is a successful outcome.
func (o Outcome) Authenticated() bool {
	return o.Result == ResultAuthenticated
}

// Authenticated returns a successful outcome.
func Authenticated(user any, ext string) Outcome {
	return Outcome{Result: ResultAuthenticated, User: user, Ext: ext}
}

// Rejected returns a rejection caused by err.
func Rejected(err error) Outcome {
	return Outcome{Result: ResultRejected, Err: err}
}

// Errored returns an error outcome caused by err.
func Errored(err error) Outcome {
	return Outcome{Result: ResultErrored, Err: err}
}

// Authenticate verifies r in the strategy's mode. The resolver is called
// with r's context at most once. There are no retries and no timeout; a
// resolver that never returns blocks this call.
func (s *Strategy) Authenticate(r *http.Request) Outcome {
	req, opts := normalize(r)
	res := newResolution(r.Context(), s.resolver)

	var (
		ext string
		err error
	)

	switch s.mode {
	case ModeBewit:
		ext, err = s.engine.AuthenticateBewit(req, res.lookup, opts)
	default:
		ext, err = s.engine.AuthenticateHeader(req, res.lookup, opts)
	}

	if res.err != nil {
		return Errored(res.err)
	}

	if err != nil {
		return Rejected(err)
	}

	creds, ok := res.found()
	if !ok {
		return Rejected(ErrUnknownCredentials)
	}

	return Authenticated(creds.User, ext)
}
