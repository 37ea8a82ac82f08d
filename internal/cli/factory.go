package cli

import (
	"fmt"
	"log/slog"

	navrules "github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/observability"
)

// RunOptions carries the flags shared by every command.
type RunOptions struct {
	ConfigPath string
	Debug      bool
}

// CreateService initializes a navrules Service with standard CLI
// conventions.
func CreateService(opts RunOptions, logger *slog.Logger, metrics *observability.Metrics) (*navrules.Service, error) {
	svcOpts := []navrules.Option{
		navrules.WithLogger(logger),
	}
	if metrics != nil {
		svcOpts = append(svcOpts, navrules.WithMetrics(metrics))
	}

	svc, err := navrules.New(opts.ConfigPath, svcOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing service: %w", err)
	}

	return svc, nil
}

// LogLevel maps the debug flag to a slog level.
func LogLevel(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
