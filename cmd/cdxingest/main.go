package main

import (
	"os"

	"github.com/sbomkit/cdxingest/cmd/cdxingest/internal/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args, os.Stdout, os.Stderr))
}
