// Package main is the entry point for the mkt CLI client.
package main

import (
	"github.com/chzzmarket/market-api/cmd/mkt/cmd"
)

func main() {
	cmd.Execute()
}
