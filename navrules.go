package navrules

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	backend "github.com/redis/go-redis/v9"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/config"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/adapters/memory"
	redisAdapter "github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/adapters/redis"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/adapters/static"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/observability"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/ports"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/resolver"
)

// Version of the navrules library.
var Version = "0.1.0"

// Service is the high-level entry point for the navrules library. It wraps
// the resolver core and the rule sources assembled from configuration.
type Service struct {
	resolver    *resolver.Resolver
	sources     []ports.RuleSource
	writer      ports.RuleWriter
	closers     []io.Closer
	logger      *slog.Logger
	metrics     *observability.Metrics
	redisClient *backend.Client
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithLogger sets a custom structured logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics registers Prometheus collectors with the resolver.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithRedisClient injects an existing Redis client for "redis" source
// entries, bypassing the client the configuration would build. Used by
// tests and by hosts that manage their own connection pool.
func WithRedisClient(client *backend.Client) Option {
	return func(s *Service) {
		s.redisClient = client
	}
}

// WithSources bypasses configuration-driven source assembly entirely and
// uses the given sources, in priority order.
func WithSources(sources ...ports.RuleSource) Option {
	return func(s *Service) {
		s.sources = sources
	}
}

// New initializes a navrules Service.
// By default it reads the YAML configuration at configPath; an empty path
// uses the built-in defaults (a dynamic-first Redis chain). The WithSources
// option skips configuration-driven assembly and configPath may be empty.
func New(configPath string, opts ...Option) (*Service, error) {
	svc := &Service{}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.logger == nil {
		svc.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var cfg *config.Config
	if len(svc.sources) == 0 {
		var err error
		if configPath == "" {
			cfg = config.Default()
		} else {
			cfg, err = config.Load(configPath)
			if err != nil {
				return nil, err
			}
		}

		if err := svc.buildSources(cfg); err != nil {
			svc.closeAll()
			return nil, err
		}
	}

	// The first writable source takes rule administration.
	for _, src := range svc.sources {
		if w, ok := src.(ports.RuleWriter); ok {
			svc.writer = w
			break
		}
	}

	resolverOpts := []resolver.Option{
		resolver.WithLogger(svc.logger),
		resolver.WithMetrics(svc.metrics),
	}
	if cfg != nil {
		resolverOpts = append(resolverOpts,
			resolver.WithQueryTimeout(cfg.Resolver.QueryTimeout.Std()),
			resolver.WithFallthrough(cfg.Resolver.Fallthrough),
		)
	}

	core, err := resolver.New(svc.sources, resolverOpts...)
	if err != nil {
		svc.closeAll()
		return nil, err
	}
	svc.resolver = core

	return svc, nil
}

// buildSources assembles the rule source chain in configured priority order.
func (s *Service) buildSources(cfg *config.Config) error {
	for i, entry := range cfg.Sources {
		switch entry.Type {
		case config.SourceRedis:
			opts, err := entry.Redis()
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}

			adapterOpts := []redisAdapter.Option{redisAdapter.WithLogger(s.logger)}
			if opts.Prefix != "" {
				adapterOpts = append(adapterOpts, redisAdapter.WithPrefix(opts.Prefix))
			}

			var src *redisAdapter.Source
			if s.redisClient != nil {
				src = redisAdapter.NewFromClient(s.redisClient, adapterOpts...)
			} else {
				src = redisAdapter.New(opts.Addr, opts.Password, opts.DB, adapterOpts...)
				s.closers = append(s.closers, src)
			}
			s.sources = append(s.sources, src)

		case config.SourceStatic:
			opts, err := entry.Static()
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			src, err := static.Load(opts.Path)
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			s.sources = append(s.sources, src)

		case config.SourceMemory:
			s.sources = append(s.sources, memory.New())

		default:
			return fmt.Errorf("source %d: unknown type %q", i, entry.Type)
		}
	}
	return nil
}

// Resolve decides the destination for one navigation event.
func (s *Service) Resolve(ctx context.Context, req domain.ResolutionRequest) (domain.Resolution, error) {
	return s.resolver.Resolve(ctx, req)
}

// Sources returns the rule sources in priority order.
func (s *Service) Sources() []ports.RuleSource {
	return s.sources
}

// Writer returns the administrative side of the first writable source, or
// nil when the chain is read-only.
func (s *Service) Writer() ports.RuleWriter {
	return s.writer
}

// Close releases any connections owned by the service.
func (s *Service) Close() error {
	return s.closeAll()
}

func (s *Service) closeAll() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}
