// Package main is the entry point for the biblios reader.
package main

import (
	"os"

	"github.com/f3rmion/biblios/cmd/biblios/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
