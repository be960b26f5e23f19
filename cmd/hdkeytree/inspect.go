package main

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/sha3"

	"github.com/hdkeytree/hdkeytree/bip32"
)

func inspect(conf *inspectConfig) error {
	extendedKey, err := bip32.Deserialize(conf.Key)
	if err != nil {
		return err
	}

	childNumber := fmt.Sprintf("%d", extendedKey.ChildNumber)
	if extendedKey.ChildNumber >= 0x80000000 {
		childNumber = fmt.Sprintf("%d'", extendedKey.ChildNumber-0x80000000)
	}

	fingerprint, err := extendedKey.Fingerprint()
	if err != nil {
		return err
	}

	publicKey, err := extendedKey.PublicKey()
	if err != nil {
		return err
	}

	fmt.Printf("Version:            %x (%s)\n", extendedKey.Version, versionName(extendedKey.Version))
	fmt.Printf("Depth:              %d\n", extendedKey.Depth)
	fmt.Printf("Parent fingerprint: %x\n", extendedKey.ParentFingerprint)
	fmt.Printf("Child number:       %s\n", childNumber)
	fmt.Printf("Chain code:         %x\n", extendedKey.ChainCode)
	fmt.Printf("Fingerprint:        %x\n", fingerprint)
	fmt.Printf("Public key:         %x\n", publicKey.SerializeCompressed())
	fmt.Printf("Ethereum address:   %s\n", ethereumAddress(publicKey))
	return nil
}

func versionName(version [4]byte) string {
	switch version {
	case bip32.BitcoinMainnetPrivate:
		return "mainnet private"
	case bip32.BitcoinMainnetPublic:
		return "mainnet public"
	case bip32.BitcoinTestnetPrivate:
		return "testnet private"
	case bip32.BitcoinTestnetPublic:
		return "testnet public"
	}

	return "unknown"
}

// ethereumAddress hashes the raw x and y coordinates of the public point with
// Keccak-256 and keeps the last 20 bytes, the address form used by Ethereum
// style chains.
func ethereumAddress(publicKey *btcec.PublicKey) string {
	uncompressedPoint := publicKey.SerializeUncompressed()

	keccak := sha3.NewLegacyKeccak256()
	keccak.Write(uncompressedPoint[1:])
	hash := keccak.Sum(nil)

	return fmt.Sprintf("0x%x", hash[len(hash)-20:])
}
