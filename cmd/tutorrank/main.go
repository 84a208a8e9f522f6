package main

import (
	"os"

	"github.com/v7s7/DaresniCheckUpdated/internal/cli"
)

// Version задаётся при сборке через -ldflags
var Version = "dev"

func main() {
	cli.SetVersion(Version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
