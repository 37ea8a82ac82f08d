package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	navrules "github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of navrules",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("navrules version %s\n", strings.TrimSpace(navrules.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
