package bip32

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// GenerateSeed generates a seed that can be used to initialize a master key.
func GenerateSeed() ([]byte, error) {
	randBytes := make([]byte, 32)
	_, err := rand.Read(randBytes)
	if err != nil {
		return nil, err
	}

	return randBytes, nil
}

// NewMaster returns a new master key based on the given seed and version.
func NewMaster(seed []byte, version [4]byte) (*ExtendedKey, error) {
	if len(seed) == 0 {
		return nil, ErrInvalidSeed
	}

	if !isPrivateVersion(version) {
		return nil, errors.Wrapf(ErrUnknownVersion, "%x is not a private extended key version", version)
	}

	mac := newHMACWriter([]byte("Bitcoin seed"))
	mac.InfallibleWrite(seed)
	I := mac.Sum(nil)

	var iL, iR [32]byte
	copy(iL[:], I[:32])
	copy(iR[:], I[32:])

	privateKey, err := privateKeyFromBytes(iL[:])
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidMasterKey, "%s", err)
	}

	zeroBytes(I)
	zeroBytes(iL[:])

	return &ExtendedKey{
		privateKey:        privateKey,
		Version:           version,
		Depth:             0,
		ParentFingerprint: [4]byte{},
		ChildNumber:       0,
		ChainCode:         iR,
	}, nil
}

// NewMasterWithPath returns a new master key based on the given seed and
// version, with a derivation to the given path.
func NewMasterWithPath(seed []byte, version [4]byte, pathString string) (*ExtendedKey, error) {
	masterKey, err := NewMaster(seed, version)
	if err != nil {
		return nil, err
	}

	return masterKey.Path(pathString)
}

// NewPublicMasterWithPath returns a new public master key based on the given
// seed and version, with a derivation to the given path.
func NewPublicMasterWithPath(seed []byte, version [4]byte, pathString string) (*ExtendedKey, error) {
	masterKey, err := NewMaster(seed, version)
	if err != nil {
		return nil, err
	}

	path, err := parsePath(pathString)
	if err != nil {
		return nil, err
	}

	descendantKey, err := masterKey.path(path)
	if err != nil {
		return nil, err
	}

	return descendantKey.Public()
}
