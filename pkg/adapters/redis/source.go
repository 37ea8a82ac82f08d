package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
)

// Source implements ports.RuleSource backed by Redis. Rules are stored as
// JSON entries in a per-origin list, so RPUSH preserves insertion order and
// LRANGE returns it. A companion set indexes the known origins.
type Source struct {
	client  *backend.Client
	prefix  string
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Source)

// WithPrefix sets the key prefix for rule lists.
func WithPrefix(prefix string) Option {
	return func(s *Source) {
		s.prefix = prefix
	}
}

// WithTimeout bounds each Redis round-trip independently of the caller's
// context. Zero leaves deadlines to the caller.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Source) {
		s.timeout = timeout
	}
}

// WithLogger sets a structured logger for the source.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// New creates a Redis rule source with its own client.
func New(address, password string, db int, opts ...Option) *Source {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis rule source from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Source {
	source := &Source{
		client: client,
		prefix: "navrules:rules:",
	}

	for _, opt := range opts {
		opt(source)
	}

	if source.logger == nil {
		source.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return source
}

func (s *Source) Name() string {
	return "redis"
}

func (s *Source) key(fromLocation string) string {
	return s.prefix + fromLocation
}

func (s *Source) indexKey() string {
	return s.prefix + "index"
}

func (s *Source) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return ctx, func() {}
}

// RulesFor returns the persisted rules for an origin in insertion order.
// Entries that fail to decode or validate are skipped and logged; they are
// a data problem, not a source outage, and must never surface as matches.
func (s *Source) RulesFor(ctx context.Context, fromLocation string) ([]domain.NavigationRule, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	entries, err := s.client.LRange(ctx, s.key(fromLocation), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read rules from redis: %w", err)
	}

	rules := make([]domain.NavigationRule, 0, len(entries))
	for _, entry := range entries {
		var rule domain.NavigationRule
		if err := json.Unmarshal([]byte(entry), &rule); err != nil {
			s.logger.Warn("skipping undecodable rule entry", "from", fromLocation, "error", err)
			continue
		}
		if err := rule.Validate(); err != nil {
			s.logger.Warn("skipping invalid persisted rule", "from", fromLocation, "error", err)
			continue
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// Put appends a rule to its origin's list and indexes the origin.
func (s *Source) Put(ctx context.Context, rule domain.NavigationRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("failed to marshal rule: %w", err)
	}

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, s.key(rule.FromLocation), data)
	pipe.SAdd(ctx, s.indexKey(), rule.FromLocation)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save rule to redis: %w", err)
	}

	return nil
}

// Remove drops all rules for an origin.
func (s *Source) Remove(ctx context.Context, fromLocation string) error {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(fromLocation))
	pipe.SRem(ctx, s.indexKey(), fromLocation)

	_, err := pipe.Exec(ctx)
	return err
}

// Origins lists the origins that currently have persisted rules.
func (s *Source) Origins(ctx context.Context) ([]string, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	origins, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list origins: %w", err)
	}
	return origins, nil
}

// Close closes the redis client.
func (s *Source) Close() error {
	return s.client.Close()
}
