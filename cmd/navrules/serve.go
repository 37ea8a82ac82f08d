package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	httpAdapter "github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/adapters/http"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/cli"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/config"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/logging"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP resolver server",
	Long:  `Starts the resolver in server mode, exposing resolution and rule administration over a JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		addr, _ := cmd.Flags().GetString("addr")

		logger := logging.New(cli.LogLevel(debug))
		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		svc, err := cli.CreateService(cli.RunOptions{ConfigPath: configPath, Debug: debug}, logger, metrics)
		if err != nil {
			fmt.Printf("Error initializing navrules: %v\n", err)
			os.Exit(1)
		}
		defer svc.Close()

		if addr == "" {
			addr = serverAddr(configPath)
		}

		handler := httpAdapter.NewHandler(httpAdapter.Options{
			Resolver: svc,
			Sources:  svc.Sources(),
			Writer:   svc.Writer(),
			Logger:   logger,
			Metrics:  promhttp.Handler(),
		})

		srv := &http.Server{
			Addr:    addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting navrules server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("navrules server stopped gracefully")
		}
	},
}

// serverAddr reads the listen address from the configuration file, falling
// back to the default when the file is absent.
func serverAddr(configPath string) string {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Default().Server.Addr
	}
	return cfg.Server.Addr
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides the config file)")
}
