package main

import (
	"fmt"

	"github.com/hdkeytree/hdkeytree/bip32"
)

func derive(conf *deriveConfig) error {
	extendedKey, err := bip32.Deserialize(conf.Key)
	if err != nil {
		return err
	}

	descendantKey, err := extendedKey.Path(conf.Path)
	if err != nil {
		return err
	}

	if conf.Public {
		descendantKey, err = descendantKey.Public()
		if err != nil {
			return err
		}
	}

	fmt.Println(descendantKey.String())
	return nil
}
