package hawk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	hawkgo "github.com/tent/hawk-go"
)

const (
	testID  = "dh37fgj492je"
	testKey = "werxhqb98rpaxn39848xrunpaw3489ruxnpa98w4rxn"
)

type testUser struct {
	Name string
}

var errStorage = errors.New("storage unavailable")

// staticResolver resolves testID to testKey and counts calls.
type staticResolver struct {
	calls atomic.Int32
	creds map[string]Credentials
	err   error
}

func newStaticResolver() *staticResolver {
	return &staticResolver{
		creds: map[string]Credentials{
			testID: {Key: testKey, Algorithm: AlgorithmSHA256, User: &testUser{Name: "steve"}},
		},
	}
}

func (s *staticResolver) Resolve(_ context.Context, id string) (Lookup, error) {
	s.calls.Add(1)

	if s.err != nil {
		return Lookup{}, s.err
	}

	c, ok := s.creds[id]
	if !ok {
		return NotFound(), nil
	}

	return Found(c), nil
}

func newTestStrategy(t *testing.T, bewit bool, resolver Resolver) *Strategy {
	t.Helper()

	s, err := New(Config{Bewit: bewit, Resolver: resolver})
	require.NoError(t, err)

	return s
}

// signedRequest returns a request for target on example.com carrying a
// Hawk header signed with key.
func signedRequest(t *testing.T, method, target, key string, cfg SignConfig) *http.Request {
	t.Helper()

	var body *strings.Reader
	if cfg.Payload != nil {
		body = strings.NewReader(string(cfg.Payload))
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, body)
	if cfg.ContentType != "" {
		req.Header.Set("Content-Type", cfg.ContentType)
	}

	if cfg.ID == "" {
		cfg.ID = testID
	}
	cfg.Key = key

	require.NoError(t, SignRequest(req, cfg))

	return req
}

// bewitRequest returns a GET request for target on example.com carrying a
// bewit valid for ttl.
func bewitRequest(t *testing.T, target string, ttl time.Duration) *http.Request {
	t.Helper()

	bewit, err := NewBewit("http://example.com"+target, BewitConfig{ID: testID, Key: testKey, TTL: ttl})
	require.NoError(t, err)

	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}

	return httptest.NewRequest(http.MethodGet, target+sep+"bewit="+bewit, nil)
}

// asReceived returns client as a server would see it: the URL holds only
// the request URI and the host moves to the Host header.
func asReceived(client *http.Request, body string) *http.Request {
	req := httptest.NewRequest(client.Method, client.URL.RequestURI(), strings.NewReader(body))
	req.Host = client.Host
	req.Header = client.Header.Clone()

	return req
}

// recordingEngine captures what the dispatcher hands to the engine.
type recordingEngine struct {
	headerCalls int
	bewitCalls  int
	req         *http.Request
	opts        Options
	lookupID    string // when set, lookup is invoked with this id
	ext         string
	err         error
}

func (e *recordingEngine) run(r *http.Request, lookup LookupFunc, opts Options) (string, error) {
	e.req = r
	e.opts = opts

	if e.lookupID != "" {
		if err := lookup(hawkCredentials(e.lookupID)); err != nil {
			return "", err
		}
	}

	return e.ext, e.err
}

func (e *recordingEngine) AuthenticateHeader(r *http.Request, lookup LookupFunc, opts Options) (string, error) {
	e.headerCalls++
	return e.run(r, lookup, opts)
}

func (e *recordingEngine) AuthenticateBewit(r *http.Request, lookup LookupFunc, opts Options) (string, error) {
	e.bewitCalls++
	return e.run(r, lookup, opts)
}

func hawkCredentials(id string) *hawkgo.Credentials {
	return &hawkgo.Credentials{ID: id}
}
