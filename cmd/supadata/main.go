package main

import (
	"os"

	"github.com/supadata-ai/supadata-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
