// Package hawk authenticates inbound HTTP requests with the Hawk MAC
// scheme, either from the Authorization header or from a bewit query
// parameter.
//
// The MAC computation itself is done by github.com/tent/hawk-go. This
// package decides which verification path a request takes, derives the
// request view the MAC must be computed over, resolves credentials through
// an application Resolver and maps the result to one of three outcomes:
// authenticated, rejected or errored.
//
// # Strategies
//
// A Strategy is created once and shared by all requests:
//
//	resolver := hawk.ResolverFunc(func(ctx context.Context, id string) (hawk.Lookup, error) {
//	    user, err := store.Find(ctx, id)
//	    if err != nil {
//	        return hawk.Lookup{}, err
//	    }
//	    if user == nil || user.Disabled {
//	        return hawk.NotFound(), nil
//	    }
//	    return hawk.Found(hawk.Credentials{
//	        Key:       user.HawkKey,
//	        Algorithm: hawk.AlgorithmSHA256,
//	        User:      user,
//	    }), nil
//	})
//
//	strategy, err := hawk.New(hawk.Config{Resolver: resolver})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Set Config.Bewit to accept bewit tokens instead of signed headers. A
// strategy accepts exactly one of the two.
//
// # Outcomes
//
// Resolver errors produce ResultErrored carrying the resolver's own error.
// NotFound, a bad MAC, an expired timestamp or bewit, a payload mismatch
// and malformed credentials all produce ResultRejected with the error from
// the verification step.
//
// # Request Normalization
//
// When the request went through muxhandlers.Mount, the MAC is checked
// against the URL the client requested rather than the rewritten one. For
// POST and PUT, a body captured by muxhandlers.RawBodyMiddleware is
// verified against the payload hash in the header; other methods never
// verify a payload.
//
// # Server Middleware
//
//	mw, err := hawk.Middleware(hawk.MiddlewareConfig{
//	    Authenticator: strategy,
//	    Logger:        logger,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	handler := muxhandlers.Chain(app, rawBody, mw)
//
// Handlers read the identity with PrincipalFromContext.
//
// # Clients
//
// SignRequest sets a Hawk Authorization header, NewBewit and BewitURL mint
// bewit tokens, and Transport signs every request of an http.Client.
package hawk
