package main

import (
	"os"

	"github.com/noterhq/noter/internal/cli"
	"github.com/noterhq/noter/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
