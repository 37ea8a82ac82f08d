package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "navrules",
	Short: "navrules is a chained navigation-rule resolver",
	Long: `navrules decides the next view for a navigation event by consulting
database-backed and statically configured rules in a configurable priority order.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (empty uses the built-in defaults)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
