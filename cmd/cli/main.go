package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}
