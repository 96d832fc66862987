// Package main is the entry point for the marketplace API server.
package main

import (
	"os"

	"github.com/chzzmarket/market-api/cmd/market-server/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
