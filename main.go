package main

import (
	"os"

	"github.com/quartopress/coverforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
