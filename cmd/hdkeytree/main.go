package main

import "github.com/pkg/errors"

func main() {
	subCmd, config := parseCommandLine()

	var err error
	switch subCmd {
	case generateSeedSubCmd:
		err = generateSeed(config.(*generateSeedConfig))
	case masterSubCmd:
		err = master(config.(*masterConfig))
	case deriveSubCmd:
		err = derive(config.(*deriveConfig))
	case inspectSubCmd:
		err = inspect(config.(*inspectConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}
