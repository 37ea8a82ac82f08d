package resolver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/observability"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/ports"
)

// DefaultQueryTimeout bounds a single rule source query when no explicit
// timeout is configured. A timed-out query is reported as SourceUnavailable.
const DefaultQueryTimeout = 2 * time.Second

// Resolver decides the next location for a navigation event by consulting
// its rule sources in priority order. The first rule whose condition equals
// the outcome wins; lower-priority sources are not consulted after a match.
type Resolver struct {
	sources            []ports.RuleSource
	timeout            time.Duration
	fallthroughOnError bool
	logger             *slog.Logger
	metrics            *observability.Metrics
}

// Option defines a functional option for configuring the Resolver.
type Option func(*Resolver)

// WithQueryTimeout bounds each individual source query. Zero disables the
// resolver-imposed bound and leaves deadlines to the caller's context.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.timeout = d
	}
}

// WithFallthrough lets resolution continue to lower-priority sources when a
// source is unavailable, instead of failing fast. The unavailability is
// still reported alongside the verdict so callers never mistake a degraded
// answer for a complete one.
func WithFallthrough(enabled bool) Option {
	return func(r *Resolver) {
		r.fallthroughOnError = enabled
	}
}

// WithLogger sets a structured logger for the resolver.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithMetrics registers Prometheus collectors for resolution outcomes and
// source query latency.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// New creates a Resolver over the given sources. Slice order is priority
// order: sources[0] is consulted first. At least one source is required.
func New(sources []ports.RuleSource, opts ...Option) (*Resolver, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("resolver requires at least one rule source")
	}

	r := &Resolver{
		sources: sources,
		timeout: DefaultQueryTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return r, nil
}

// Sources returns the rule sources in priority order.
func (r *Resolver) Sources() []ports.RuleSource {
	return r.sources
}

// Resolve decides the destination for one navigation event.
//
// The verdict is unresolved when no rule in any source matches; that is a
// normal outcome, not an error. A failing source yields a
// *domain.SourceUnavailableError instead, unless fall-through is enabled,
// in which case lower-priority sources are still tried and the error is
// returned only if none of them produced a match.
func (r *Resolver) Resolve(ctx context.Context, req domain.ResolutionRequest) (domain.Resolution, error) {
	if err := req.Validate(); err != nil {
		return domain.Unresolved(), err
	}

	var firstErr error

	for _, src := range r.sources {
		rules, err := r.query(ctx, src, req.FromLocation)
		if err != nil {
			unavailable := &domain.SourceUnavailableError{Source: src.Name(), Err: err}
			if !r.fallthroughOnError {
				r.metrics.CountOutcome(observability.OutcomeUnavailable)
				r.logger.Error("rule source unavailable", "source", src.Name(), "from", req.FromLocation, "error", err)
				return domain.Unresolved(), unavailable
			}
			r.logger.Warn("rule source unavailable, falling through", "source", src.Name(), "from", req.FromLocation, "error", err)
			if firstErr == nil {
				firstErr = unavailable
			}
			continue
		}

		for _, rule := range rules {
			if err := rule.Validate(); err != nil {
				// Never surface an invalid rule as a match.
				r.logger.Warn("skipping invalid rule", "source", src.Name(), "from", req.FromLocation, "error", err)
				continue
			}
			if rule.Matches(req.Outcome) {
				r.metrics.CountOutcome(observability.OutcomeResolved)
				r.logger.Debug("navigation resolved",
					"from", req.FromLocation,
					"outcome", req.Outcome,
					"action", req.ActionToken,
					"to", rule.ToLocation,
					"source", src.Name(),
				)
				return domain.ResolvedTo(rule.ToLocation, src.Name()), nil
			}
		}
	}

	if firstErr != nil {
		// Fall-through exhausted every source without a match; the skipped
		// source might have held the answer, so report unavailability
		// rather than a clean unresolved.
		r.metrics.CountOutcome(observability.OutcomeUnavailable)
		return domain.Unresolved(), firstErr
	}

	r.metrics.CountOutcome(observability.OutcomeUnresolved)
	r.logger.Debug("navigation unresolved", "from", req.FromLocation, "outcome", req.Outcome)
	return domain.Unresolved(), nil
}

// query runs one source lookup under the configured timeout.
func (r *Resolver) query(ctx context.Context, src ports.RuleSource, fromLocation string) ([]domain.NavigationRule, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	rules, err := src.RulesFor(ctx, fromLocation)
	r.metrics.ObserveQuery(src.Name(), time.Since(start))

	return rules, err
}
