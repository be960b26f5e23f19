package main

import (
	"crypto/rand"
	"fmt"

	"github.com/pkg/errors"
)

func generateSeed(conf *generateSeedConfig) error {
	if conf.Length < 16 || conf.Length > 64 {
		return errors.Errorf("seed length must be between 16 and 64 bytes but got %d", conf.Length)
	}

	seed := make([]byte, conf.Length)
	_, err := rand.Read(seed)
	if err != nil {
		return err
	}

	fmt.Printf("%x\n", seed)
	return nil
}
