// Package main - Entry point for the quoting CLI
package main

import (
	"os"

	"mainland-quote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
