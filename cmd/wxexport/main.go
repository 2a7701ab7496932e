package main

import (
	"os"

	"weather-export/internal/cli"
	"weather-export/internal/config"
	"weather-export/internal/errors"
	"weather-export/internal/logging"
)

func main() {
	root := cli.NewRootCommand(config.NewLoader())

	err := root.Execute()

	// os.Exit skips deferred calls
	logging.Sync()
	os.Exit(errors.ExitCode(err))
}
