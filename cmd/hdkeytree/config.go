package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	generateSeedSubCmd = "generate-seed"
	masterSubCmd       = "master"
	deriveSubCmd       = "derive"
	inspectSubCmd      = "inspect"
)

type generateSeedConfig struct {
	Length uint8 `long:"length" short:"l" default:"32" description:"Seed length in bytes (16-64)"`
}

type masterConfig struct {
	Seed     string `long:"seed" short:"s" description:"The seed, encoded in hex"`
	Mnemonic bool   `long:"mnemonic" short:"m" description:"Read a BIP39 mnemonic and passphrase from the terminal instead of --seed"`
	Path     string `long:"path" short:"p" default:"m" description:"Derivation path to apply to the master key"`
	Testnet  bool   `long:"testnet" description:"Use the testnet extended key version"`
}

type deriveConfig struct {
	Key    string `long:"key" short:"k" description:"The extended private key to derive from" required:"true"`
	Path   string `long:"path" short:"p" description:"Derivation path (e.g. m/44'/0'/0'/0/0)" required:"true"`
	Public bool   `long:"public" description:"Print the neutered extended public key"`
}

type inspectConfig struct {
	Key string `long:"key" short:"k" description:"The extended key to decode" required:"true"`
}

func parseCommandLine() (subCommand string, config interface{}) {
	parser := flags.NewParser(nil, flags.PrintErrors|flags.HelpFlag)

	generateSeedConf := &generateSeedConfig{}
	parser.AddCommand(generateSeedSubCmd, "Generates a new random seed",
		"Generates a new random seed and prints it in hex", generateSeedConf)

	masterConf := &masterConfig{}
	parser.AddCommand(masterSubCmd, "Creates a master extended key from a seed",
		"Creates a master extended key from a hex seed or a BIP39 mnemonic, "+
			"optionally derived to the given path", masterConf)

	deriveConf := &deriveConfig{}
	parser.AddCommand(deriveSubCmd, "Derives a descendant of an extended key",
		"Derives the descendant of the given extended private key at the given path", deriveConf)

	inspectConf := &inspectConfig{}
	parser.AddCommand(inspectSubCmd, "Decodes an extended key",
		"Decodes the given extended key and prints its fields", inspectConf)

	_, err := parser.Parse()

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	switch parser.Command.Active.Name {
	case generateSeedSubCmd:
		config = generateSeedConf
	case masterSubCmd:
		config = masterConf
	case deriveSubCmd:
		config = deriveConf
	case inspectSubCmd:
		config = inspectConf
	}

	return parser.Command.Active.Name, config
}
