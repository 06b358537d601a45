package main

import (
	"os"

	"github.com/katalvlaran/gaseos/cmd/gaseos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
