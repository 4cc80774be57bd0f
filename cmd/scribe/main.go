package main

import (
	"os"

	"github.com/austencloud/tka-scribe-sub012/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
