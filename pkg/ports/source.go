package ports

import (
	"context"

	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
)

// RuleSource provides navigation rules queryable by origin location.
// Implementations are read-only from the resolver's perspective and must
// support concurrent queries.
type RuleSource interface {
	// Name identifies the source in verdicts, logs and metrics.
	Name() string

	// RulesFor returns all rules whose FromLocation equals fromLocation,
	// in insertion order. An unknown origin yields an empty slice, not an
	// error; errors signal that the source could not answer at all.
	// The returned slice is owned by the caller.
	RulesFor(ctx context.Context, fromLocation string) ([]domain.NavigationRule, error)
}

// RuleWriter is the administrative side of a rule source. Only persisted
// and in-memory sources implement it; static configuration is load-time
// only.
type RuleWriter interface {
	// Put appends a rule to the origin's rule list. Invalid rules are
	// rejected with domain.ErrInvalidRule.
	Put(ctx context.Context, rule domain.NavigationRule) error

	// Remove drops all rules for the given origin.
	Remove(ctx context.Context, fromLocation string) error
}
