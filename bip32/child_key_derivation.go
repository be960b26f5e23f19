package bip32

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
)

const (
	hardenedIndexStart = 0x80000000
	maxDepth           = math.MaxUint8
)

var curveOrder = btcec.S256().N

func isHardened(i uint32) bool {
	return i >= hardenedIndexStart
}

// Child derives the extended key for the given child index. Hardened indexes
// (those at or above 2^31) commit to the parent private key in the HMAC
// input; normal indexes commit to the parent public point.
//
// An index for which the HMAC output falls outside the valid scalar range is
// skipped in favor of the next index, as the standard requires. The retry
// stays inside the hardness tier the derivation started in: running off the
// end of the tier fails with ErrIndexOutOfRange.
func (extKey *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	if !extKey.IsPrivate() {
		return nil, errors.Errorf("cannot derive a child of a neutered extended key")
	}

	if extKey.Depth == maxDepth {
		return nil, ErrDeriveBeyondMaxDepth
	}

	fingerprint, err := extKey.Fingerprint()
	if err != nil {
		return nil, err
	}

	for index := i; ; index++ {
		childPrivateKey, childChainCode, err := extKey.childKeyAndChainCode(index)
		if err == nil {
			return &ExtendedKey{
				privateKey:        childPrivateKey,
				Version:           extKey.Version,
				Depth:             extKey.Depth + 1,
				ParentFingerprint: fingerprint,
				ChildNumber:       index,
				ChainCode:         childChainCode,
			}, nil
		}

		if !errors.Is(err, errInvalidChildKey) {
			return nil, err
		}

		if index == math.MaxUint32 || isHardened(index+1) != isHardened(i) {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "no valid child index at or above %d", i)
		}
	}
}

// childKeyAndChainCode runs one CKD attempt: child key = (I_L + parent) mod n,
// child chain code = I_R. It reports errInvalidChildKey when I_L is not below
// the curve order or when the sum is zero, in which case the index must be
// skipped.
func (extKey *ExtendedKey) childKeyAndChainCode(i uint32) (*btcec.PrivateKey, [32]byte, error) {
	I, err := extKey.calcI(i)
	if err != nil {
		return nil, [32]byte{}, err
	}

	var iL, iR [32]byte
	copy(iL[:], I[:32])
	copy(iR[:], I[32:])

	iLNum := new(big.Int).SetBytes(iL[:])
	if iLNum.Cmp(curveOrder) >= 0 {
		return nil, [32]byte{}, errors.Wrapf(errInvalidChildKey, "scalar for index %d overflows the curve order", i)
	}

	parentKeyNum := new(big.Int).SetBytes(extKey.privateKey.Serialize())
	childKeyNum := new(big.Int).Add(iLNum, parentKeyNum)
	childKeyNum.Mod(childKeyNum, curveOrder)
	if childKeyNum.Sign() == 0 {
		return nil, [32]byte{}, errors.Wrapf(errInvalidChildKey, "index %d derives the zero key", i)
	}

	var childKeyBytes [32]byte
	childKeyNum.FillBytes(childKeyBytes[:])
	childPrivateKey, _ := btcec.PrivKeyFromBytes(childKeyBytes[:])
	zeroBytes(childKeyBytes[:])

	return childPrivateKey, iR, nil
}

func (extKey *ExtendedKey) calcI(i uint32) ([]byte, error) {
	mac := newHMACWriter(extKey.ChainCode[:])
	if isHardened(i) {
		mac.InfallibleWrite([]byte{0x00})
		mac.InfallibleWrite(extKey.privateKey.Serialize())
	} else {
		publicKey, err := extKey.PublicKey()
		if err != nil {
			return nil, err
		}

		mac.InfallibleWrite(publicKey.SerializeCompressed())
	}

	mac.InfallibleWrite(serializeUint32(i))
	return mac.Sum(nil), nil
}

// Fingerprint returns the first 4 bytes of hash160 over the compressed public
// point. A child records its parent's fingerprint at derivation time.
func (extKey *ExtendedKey) Fingerprint() ([4]byte, error) {
	publicKey, err := extKey.PublicKey()
	if err != nil {
		return [4]byte{}, err
	}

	hash := hash160(publicKey.SerializeCompressed())
	var fingerprint [4]byte
	copy(fingerprint[:], hash[:4])
	return fingerprint, nil
}

func privateKeyFromBytes(serialized []byte) (*btcec.PrivateKey, error) {
	keyNum := new(big.Int).SetBytes(serialized)
	if keyNum.Sign() == 0 || keyNum.Cmp(curveOrder) >= 0 {
		return nil, errors.Errorf("private key is zero or overflows the curve order")
	}

	privateKey, _ := btcec.PrivKeyFromBytes(serialized)
	return privateKey, nil
}

func serializeUint32(v uint32) []byte {
	serialized := make([]byte, 4)
	binary.BigEndian.PutUint32(serialized, v)
	return serialized
}
