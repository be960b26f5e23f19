package bip32

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

func newHMACWriter(key []byte) hmacWriter {
	return hmacWriter{
		Hash: hmac.New(sha512.New, key),
	}
}

type hmacWriter struct {
	hash.Hash
}

func (hw hmacWriter) InfallibleWrite(p []byte) {
	_, err := hw.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "writing to hmac should never fail"))
	}
}

func calcChecksum(data []byte) []byte {
	return doubleSha256(data)[:checkSumLen]
}

func doubleSha256(data []byte) []byte {
	inner := sha256.New()
	outer := sha256.New()
	inner.Write(data)
	outer.Write(inner.Sum(nil))
	return outer.Sum(nil)
}

func validateChecksum(data []byte) error {
	checksum := data[len(data)-checkSumLen:]
	expectedChecksum := calcChecksum(data[:len(data)-checkSumLen])
	if !bytes.Equal(expectedChecksum, checksum) {
		return errors.Wrapf(ErrBadChecksum, "expected checksum %x but got %x", expectedChecksum, checksum)
	}

	return nil
}

// hash160 calculates ripemd160(sha256(data)).
func hash160(data []byte) []byte {
	sha := sha256.New()
	sha.Write(data)
	ripemd := ripemd160.New()
	ripemd.Write(sha.Sum(nil))
	return ripemd.Sum(nil)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
