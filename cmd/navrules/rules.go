package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	navrules "github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/cli"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/logging"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and administer navigation rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list FROM",
	Short: "List the rules for an origin location, per source",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService(cmd)
		defer svc.Close()

		from := args[0]
		for _, src := range svc.Sources() {
			rules, err := src.RulesFor(context.Background(), from)
			if err != nil {
				cli.PrintError(os.Stderr, err)
				os.Exit(1)
			}

			fmt.Printf("%s:\n", src.Name())
			if len(rules) == 0 {
				fmt.Println("  (no rules)")
				continue
			}
			for _, rule := range rules {
				fmt.Printf("  %s --[%s]--> %s\n", rule.FromLocation, rule.Condition, rule.ToLocation)
			}
		}
	},
}

var rulesPutCmd = &cobra.Command{
	Use:   "put FROM TO CONDITION",
	Short: "Persist a navigation rule in the dynamic store",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService(cmd)
		defer svc.Close()

		writer := svc.Writer()
		if writer == nil {
			cli.PrintError(os.Stderr, domain.ErrNoPersistedSource)
			os.Exit(1)
		}

		rule := domain.NavigationRule{
			FromLocation: args[0],
			ToLocation:   args[1],
			Condition:    args[2],
		}
		if err := writer.Put(context.Background(), rule); err != nil {
			cli.PrintError(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Printf("rule persisted: %s --[%s]--> %s\n", rule.FromLocation, rule.Condition, rule.ToLocation)
	},
}

var rulesRemoveCmd = &cobra.Command{
	Use:   "remove FROM",
	Short: "Remove all persisted rules for an origin location",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService(cmd)
		defer svc.Close()

		writer := svc.Writer()
		if writer == nil {
			cli.PrintError(os.Stderr, domain.ErrNoPersistedSource)
			os.Exit(1)
		}

		if err := writer.Remove(context.Background(), args[0]); err != nil {
			cli.PrintError(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Printf("rules removed for %s\n", args[0])
	},
}

func mustService(cmd *cobra.Command) *navrules.Service {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	logger := logging.New(cli.LogLevel(debug))
	svc, err := cli.CreateService(cli.RunOptions{ConfigPath: configPath, Debug: debug}, logger, nil)
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
	return svc
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesPutCmd)
	rulesCmd.AddCommand(rulesRemoveCmd)
}
