// Package main is the entry point for the bignum CLI.
package main

import (
	"fmt"
	"os"

	"github.com/avdva/bignum/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
