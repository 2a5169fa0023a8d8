package hawk

import (
	"crypto/sha1" //nolint:gosec // sha1 is one of the two Hawk MAC algorithms
	"crypto/sha256"
	"fmt"
	"hash"
)

// Algorithm identifies the HMAC digest used for a Hawk key.
type Algorithm string

const (
	// AlgorithmSHA1 is HMAC-SHA1.
	AlgorithmSHA1 Algorithm = "sha1"

	// AlgorithmSHA256 is HMAC-SHA256. An empty Algorithm is treated as
	// AlgorithmSHA256.
	AlgorithmSHA256 Algorithm = "sha256"
)

// String returns the algorithm name as used by Hawk credentials.
func (a Algorithm) String() string {
	return string(a)
}

// hashFunc returns the digest constructor for the algorithm, or
// ErrUnknownAlgorithm.
func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA256, "":
		return sha256.New, nil
	case AlgorithmSHA1:
		return sha1.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}
