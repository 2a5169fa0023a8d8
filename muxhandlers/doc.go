// Package muxhandlers provides the host-side HTTP plumbing used in front of
// request authenticators.
//
// # Mounting
//
// Mount dispatches to a sub-handler under a path prefix. The prefix is
// stripped from r.URL before the sub-handler runs, and the pre-rewrite URL
// is kept in the request context so that signature checks can be computed
// over the path the client actually requested:
//
//	h := muxhandlers.Mount("/api", apiHandler)
//
//	// inside apiHandler
//	u, ok := muxhandlers.OriginalURL(r)
//
// # Raw Body Capture
//
// RawBodyMiddleware buffers POST and PUT bodies so that payload hashes can be
// verified without consuming the body for downstream handlers:
//
//	mw, err := muxhandlers.RawBodyMiddleware(muxhandlers.RawBodyConfig{
//	    MaxBytes: 1 << 20,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Request ID and Recovery
//
// RequestIDMiddleware propagates an X-Request-ID header and exposes the id
// through RequestIDFromContext and LoggerFromContext. RecoveryMiddleware
// turns handler panics into 500 responses and logs them through logrus.
//
//	h := muxhandlers.Chain(handler,
//	    muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{Logger: logger}),
//	    muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{}),
//	)
package muxhandlers
