package main

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"

	"github.com/hdkeytree/hdkeytree/bip32"
)

func master(conf *masterConfig) error {
	var seed []byte
	switch {
	case conf.Mnemonic:
		mnemonic, passphrase, err := readMnemonic()
		if err != nil {
			return err
		}

		if !bip39.IsMnemonicValid(mnemonic) {
			return errors.Errorf("the given mnemonic is invalid")
		}

		seed = bip39.NewSeed(mnemonic, passphrase)
	case conf.Seed != "":
		var err error
		seed, err = hex.DecodeString(conf.Seed)
		if err != nil {
			return errors.Wrap(err, "error decoding the seed")
		}
	default:
		return errors.Errorf("either --seed or --mnemonic is required")
	}

	version := bip32.BitcoinMainnetPrivate
	if conf.Testnet {
		version = bip32.BitcoinTestnetPrivate
	}

	extendedKey, err := bip32.NewMasterWithPath(seed, version, conf.Path)
	if err != nil {
		return err
	}

	fmt.Println(extendedKey.String())
	return nil
}
