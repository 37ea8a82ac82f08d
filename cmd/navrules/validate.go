package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/adapters/static"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a static rules file for consistency",
	Long:  `Parses a static navigation rules document and reports the first invalid rule, if any.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := static.Load(args[0])
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rules file is valid (%d rules)\n", src.Len())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
