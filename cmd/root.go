package cmd

import (
	"github.com/spf13/cobra"
)

var VERSION = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "monobmp",
	Short:   "A Go-based image to dithered 1-bit BMP converter",
	Version: VERSION,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(infoCmd)
}
