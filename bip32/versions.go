package bip32

import "github.com/pkg/errors"

// Version byte tags for serialized extended keys. The set is closed:
// deserialization rejects any other 4-byte value.
var (
	// BitcoinMainnetPrivate is the version used for bitcoin mainnet
	// private extended keys. Encodes to xprv in base58.
	BitcoinMainnetPrivate = [4]byte{0x04, 0x88, 0xad, 0xe4}

	// BitcoinMainnetPublic is the version used for bitcoin mainnet
	// public extended keys. Encodes to xpub in base58.
	BitcoinMainnetPublic = [4]byte{0x04, 0x88, 0xb2, 0x1e}

	// BitcoinTestnetPrivate is the version used for bitcoin testnet
	// private extended keys. Encodes to tprv in base58.
	BitcoinTestnetPrivate = [4]byte{0x04, 0x35, 0x83, 0x94}

	// BitcoinTestnetPublic is the version used for bitcoin testnet
	// public extended keys. Encodes to tpub in base58.
	BitcoinTestnetPublic = [4]byte{0x04, 0x35, 0x87, 0xcf}
)

func isPrivateVersion(version [4]byte) bool {
	switch version {
	case BitcoinMainnetPrivate, BitcoinTestnetPrivate:
		return true
	}

	return false
}

func isPublicVersion(version [4]byte) bool {
	switch version {
	case BitcoinMainnetPublic, BitcoinTestnetPublic:
		return true
	}

	return false
}

func toPublicVersion(version [4]byte) ([4]byte, error) {
	switch version {
	case BitcoinMainnetPrivate:
		return BitcoinMainnetPublic, nil
	case BitcoinTestnetPrivate:
		return BitcoinTestnetPublic, nil
	case BitcoinMainnetPublic, BitcoinTestnetPublic:
		return version, nil
	}

	return [4]byte{}, errors.Wrapf(ErrUnknownVersion, "no public version for %x", version)
}
