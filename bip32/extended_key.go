package bip32

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

// ExtendedKey is a single node in a derivation tree: a key plus the chain
// code and bookkeeping needed to derive its children. A node is never mutated
// after creation; Child always produces a new node.
type ExtendedKey struct {
	privateKey        *btcec.PrivateKey
	publicKey         *btcec.PublicKey
	Version           [4]byte
	Depth             uint8
	ParentFingerprint [4]byte
	ChildNumber       uint32
	ChainCode         [32]byte
}

const (
	versionSerializationLen     = 4
	depthSerializationLen       = 1
	fingerprintSerializationLen = 4
	childNumberSerializationLen = 4
	chainCodeSerializationLen   = 32
	keySerializationLen         = 33
	checkSumLen                 = 4
)

const (
	versionSerializationOffset     = 0
	depthSerializationOffset       = versionSerializationOffset + versionSerializationLen
	fingerprintSerializationOffset = depthSerializationOffset + depthSerializationLen
	childNumberSerializationOffset = fingerprintSerializationOffset + fingerprintSerializationLen
	chainCodeSerializationOffset   = childNumberSerializationOffset + childNumberSerializationLen
	keySerializationOffset         = chainCodeSerializationOffset + chainCodeSerializationLen
	checkSumSerializationOffset    = keySerializationOffset + keySerializationLen
)

const extendedKeySerializationLen = versionSerializationLen +
	depthSerializationLen +
	fingerprintSerializationLen +
	childNumberSerializationLen +
	chainCodeSerializationLen +
	keySerializationLen +
	checkSumLen

// IsPrivate returns whether the extended key carries its private part.
func (extKey *ExtendedKey) IsPrivate() bool {
	return extKey.privateKey != nil
}

// PrivateKey returns the private key of a private extended key.
func (extKey *ExtendedKey) PrivateKey() (*btcec.PrivateKey, error) {
	if !extKey.IsPrivate() {
		return nil, errors.Errorf("extended key is missing its private part")
	}

	return extKey.privateKey, nil
}

// PublicKey returns the public point of the extended key. The point is
// recomputed on every call rather than cached, so concurrent walks that share
// an ancestor node never write to it.
func (extKey *ExtendedKey) PublicKey() (*btcec.PublicKey, error) {
	if extKey.publicKey != nil {
		return extKey.publicKey, nil
	}

	if extKey.privateKey == nil {
		return nil, errors.Errorf("extended key was zeroed")
	}

	return extKey.privateKey.PubKey(), nil
}

// Public returns a neutered copy of the extended key: same chain code, depth,
// parent fingerprint and child number, but carrying only the public point
// under the corresponding public version. The copy cannot derive children.
func (extKey *ExtendedKey) Public() (*ExtendedKey, error) {
	version, err := toPublicVersion(extKey.Version)
	if err != nil {
		return nil, err
	}

	publicKey, err := extKey.PublicKey()
	if err != nil {
		return nil, err
	}

	return &ExtendedKey{
		publicKey:         publicKey,
		Version:           version,
		Depth:             extKey.Depth,
		ParentFingerprint: extKey.ParentFingerprint,
		ChildNumber:       extKey.ChildNumber,
		ChainCode:         extKey.ChainCode,
	}, nil
}

// Zero overwrites the key material and chain code. The extended key is not
// usable afterwards.
func (extKey *ExtendedKey) Zero() {
	if extKey.privateKey != nil {
		extKey.privateKey.Zero()
		extKey.privateKey = nil
	}
	extKey.publicKey = nil
	zeroBytes(extKey.ChainCode[:])
	extKey.Version = [4]byte{}
	extKey.ParentFingerprint = [4]byte{}
	extKey.Depth = 0
	extKey.ChildNumber = 0
}

func (extKey *ExtendedKey) serialize() []byte {
	var serialized [extendedKeySerializationLen]byte
	copy(serialized[versionSerializationOffset:], extKey.Version[:])
	serialized[depthSerializationOffset] = extKey.Depth
	copy(serialized[fingerprintSerializationOffset:], extKey.ParentFingerprint[:])
	binary.BigEndian.PutUint32(serialized[childNumberSerializationOffset:], extKey.ChildNumber)
	copy(serialized[chainCodeSerializationOffset:], extKey.ChainCode[:])
	if extKey.IsPrivate() {
		serialized[keySerializationOffset] = 0
		copy(serialized[keySerializationOffset+1:], extKey.privateKey.Serialize())
	} else {
		copy(serialized[keySerializationOffset:], extKey.publicKey.SerializeCompressed())
	}
	checkSum := calcChecksum(serialized[:checkSumSerializationOffset])
	copy(serialized[checkSumSerializationOffset:], checkSum)
	return serialized[:]
}

// String returns the base58 form of the extended key.
func (extKey *ExtendedKey) String() string {
	if extKey.privateKey == nil && extKey.publicKey == nil {
		return "zeroed extended key"
	}

	return base58.Encode(extKey.serialize())
}

// Deserialize decodes the base58 form of an extended key, private or public,
// validating the checksum, the version tag and the key material.
func Deserialize(extKeyString string) (*ExtendedKey, error) {
	serialized := base58.Decode(extKeyString)
	return deserializeExtendedKey(serialized)
}

func deserializeExtendedKey(serialized []byte) (*ExtendedKey, error) {
	if len(serialized) != extendedKeySerializationLen {
		return nil, errors.Wrapf(ErrInvalidKeyLength,
			"serialized key length must be %d bytes but got %d", extendedKeySerializationLen, len(serialized))
	}

	err := validateChecksum(serialized)
	if err != nil {
		return nil, err
	}

	extKey := &ExtendedKey{}
	copy(extKey.Version[:], serialized[versionSerializationOffset:])
	extKey.Depth = serialized[depthSerializationOffset]
	copy(extKey.ParentFingerprint[:], serialized[fingerprintSerializationOffset:childNumberSerializationOffset])
	extKey.ChildNumber = binary.BigEndian.Uint32(serialized[childNumberSerializationOffset:])
	copy(extKey.ChainCode[:], serialized[chainCodeSerializationOffset:keySerializationOffset])

	// Only a master key has no parent to link to.
	if extKey.Depth == 0 && (extKey.ParentFingerprint != [4]byte{} || extKey.ChildNumber != 0) {
		return nil, errors.Errorf("a depth 0 key must have a zero parent fingerprint and child number")
	}

	keyBytes := serialized[keySerializationOffset:checkSumSerializationOffset]
	switch {
	case isPrivateVersion(extKey.Version):
		if keyBytes[0] != 0 {
			return nil, errors.Errorf("expected 0 padding for private key but got %d", keyBytes[0])
		}

		extKey.privateKey, err = privateKeyFromBytes(keyBytes[1:])
		if err != nil {
			return nil, err
		}
	case isPublicVersion(extKey.Version):
		extKey.publicKey, err = btcec.ParsePubKey(keyBytes)
		if err != nil {
			return nil, errors.Wrap(err, "error parsing public key")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownVersion, "%x", extKey.Version)
	}

	return extKey, nil
}
