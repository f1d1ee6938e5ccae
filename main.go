package main

import (
	"os"

	"github.com/Osso/regex-replace-mcp/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
