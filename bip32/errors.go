package bip32

import "github.com/pkg/errors"

var (
	// ErrInvalidSeed is returned when a master key is requested for an empty seed.
	ErrInvalidSeed = errors.New("seed must not be empty")

	// ErrInvalidMasterKey is returned when the seed hashes to a scalar outside
	// the valid private key range. There is no alternative index to retry for
	// the master step, so the caller has to supply a different seed.
	ErrInvalidMasterKey = errors.New("seed derives an invalid master key")

	// ErrBadChecksum is returned when the trailing checksum of a serialized
	// extended key does not match the checksum of its payload.
	ErrBadChecksum = errors.New("extended key checksum mismatch")

	// ErrInvalidKeyLength is returned when a serialized extended key decodes
	// to the wrong number of bytes.
	ErrInvalidKeyLength = errors.New("serialized extended key has an invalid length")

	// ErrUnknownVersion is returned when a serialized extended key carries a
	// version tag outside the recognized set.
	ErrUnknownVersion = errors.New("unknown extended key version")

	// ErrIndexOutOfRange is returned when a child index does not fit in 32
	// bits, or when skipping invalid indexes would leave the hardness tier
	// the derivation started in.
	ErrIndexOutOfRange = errors.New("child index is out of range")

	// ErrDeriveBeyondMaxDepth is returned when deriving a child of a key that
	// already has 255 ancestors.
	ErrDeriveBeyondMaxDepth = errors.New("cannot derive a key with more than 255 indices in its path")
)

// errInvalidChildKey marks an index whose HMAC output falls outside the valid
// scalar range. It never escapes Child, which recovers by advancing to the
// next index.
var errInvalidChildKey = errors.New("derived child key is invalid")
