package main

import (
	"os"

	"dashboard.must.dev/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
