package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func readMnemonic() (mnemonic string, passphrase string, err error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Enter mnemonic:")
	line, isPrefix, err := reader.ReadLine()
	if err != nil {
		return "", "", err
	}
	if isPrefix {
		return "", "", errors.Errorf("mnemonic is too long")
	}
	mnemonic = strings.TrimSpace(string(line))

	fmt.Print("Enter passphrase (empty for none): ")
	passphraseBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", errors.Wrap(err, "error reading passphrase")
	}

	return mnemonic, string(passphraseBytes), nil
}
