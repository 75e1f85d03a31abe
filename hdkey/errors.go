package hdkey

import "errors"

var (
	// ErrInvalidMasterKey is returned when the seed hashes to a scalar outside
	// [1, n-1]. The seed should be discarded.
	ErrInvalidMasterKey = errors.New("the master key is invalid, choose another seed")

	// ErrHardenedRequiresPrivateKey is returned when a hardened child is derived from
	// a public key.
	ErrHardenedRequiresPrivateKey = errors.New("cannot derive a hardened key from a public key")

	// ErrInvalidChildKey is returned when the child key at an index is unusable. The
	// caller may proceed with the next index.
	ErrInvalidChildKey = errors.New("the derived child key is invalid")

	// ErrDepthOverflow is returned when deriving below the maximum depth of 255.
	ErrDepthOverflow = errors.New("cannot derive a key with more than 255 indices in its path")

	ErrUnknownVersion       = errors.New("unknown extended key version")
	ErrMalformedKeyMaterial = errors.New("malformed extended key")
	ErrNotPrivateKey        = errors.New("extended key is not private")
	ErrInvalidPath          = errors.New("invalid derivation path")
)
