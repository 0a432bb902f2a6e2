// Package main is a smoke check against the live article API: it searches
// for an account, lists its articles since a date and downloads the first.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
