// Package main is a demonstration pipeline for the sharedbuf package:
// a producer serializes messages into a MutableBuffer, freezes each one,
// and fans the frozen buffers out to concurrent mock writers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	writers  int
	messages int
	payload  int
)

var rootCmd = &cobra.Command{
	Use:   "sbdemo",
	Short: "Demonstrates shared buffer lifetime management under concurrent writers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(writers, messages, payload)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().IntVar(&writers, "writers", 4, "concurrent mock writers per message")
	rootCmd.Flags().IntVar(&messages, "messages", 8, "messages to publish")
	rootCmd.Flags().IntVar(&payload, "payload", 64, "payload bytes per message")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
