package main

import (
	"os"

	"github.com/Makepad-fr/swipelist/internal/cli"
)

func main() {
	// Hand everything after the program name to the CLI runner.
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
