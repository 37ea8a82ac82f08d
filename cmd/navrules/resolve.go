package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/cli"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/logging"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve FROM OUTCOME",
	Short: "Resolve a single navigation event",
	Long: `Resolves one navigation event against the configured rule chain and prints
the verdict. Exits 0 when a rule matched, 2 when unresolved, 1 on error.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		action, _ := cmd.Flags().GetString("action")

		logger := logging.New(cli.LogLevel(debug))

		svc, err := cli.CreateService(cli.RunOptions{ConfigPath: configPath, Debug: debug}, logger, nil)
		if err != nil {
			cli.PrintError(os.Stderr, err)
			os.Exit(1)
		}
		defer svc.Close()

		res, err := svc.Resolve(context.Background(), domain.ResolutionRequest{
			FromLocation: args[0],
			ActionToken:  action,
			Outcome:      args[1],
		})
		if err != nil {
			cli.PrintError(os.Stderr, err)
			os.Exit(1)
		}

		cli.PrintVerdict(os.Stdout, res)
		if !res.Resolved {
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().String("action", "", "Action token of the triggering UI action")
}
