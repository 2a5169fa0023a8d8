package hawk

import "net/http"

// Name is the identifier of the Hawk strategy.
const Name = "hawk"

// Mode selects how a Strategy expects requests to be authenticated.
type Mode int

const (
	// ModeStandard verifies a signed Authorization header covering method,
	// host, path and optionally payload and ext data.
	ModeStandard Mode = iota

	// ModeBewit verifies a self-contained signed token carried in the
	// bewit query parameter.
	ModeBewit
)

// String returns "standard" or "bewit".
func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeBewit:
		return "bewit"
	default:
		return "unknown"
	}
}

// Authenticator attempts authentication of a request and reports exactly
// one terminal Outcome.
type Authenticator interface {
	Authenticate(r *http.Request) Outcome
}

// Config configures a Strategy.
type Config struct {
	// Bewit selects ModeBewit when true and ModeStandard otherwise.
	Bewit bool

	// Resolver looks up credentials for a claimed key identifier.
	// Required.
	Resolver Resolver

	// Engine performs the Hawk MAC verification. Defaults to an engine
	// backed by github.com/tent/hawk-go.
	Engine Engine
}

// Strategy authenticates requests with Hawk. It holds no per-request state
// and is safe for concurrent use.
type Strategy struct {
	mode     Mode
	resolver Resolver
	engine   Engine
}

// New returns a Strategy for cfg.
//
// It returns ErrNoResolver if cfg.Resolver is nil.
func New(cfg Config) (*Strategy, error) {
	if cfg.Resolver == nil {
		return nil, ErrNoResolver
	}

	mode := ModeStandard
	if cfg.Bewit {
		mode = ModeBewit
	}

	engine := cfg.Engine
	if engine == nil {
		engine = DefaultEngine()
	}

	return &Strategy{
		mode:     mode,
		resolver: cfg.Resolver,
		engine:   engine,
	}, nil
}

// Name returns Name.
func (s *Strategy) Name() string { return Name }

// Mode returns the mode chosen at construction.
func (s *Strategy) Mode() Mode { return s.mode }
