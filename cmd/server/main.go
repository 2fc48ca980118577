// Package main is the entry point for the gamebook server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gamebook-api",
	Short: "Interactive gamebook server",
	Long:  `gamebook-api runs a choose-your-own-adventure engine with combat, randomized tests, and persistent player records.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
}
