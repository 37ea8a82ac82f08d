package memory

import (
	"context"
	"sync"

	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
)

// Source implements ports.RuleSource with an in-process table. It is the
// source of choice for tests and for hosts that assemble their rule set
// programmatically.
type Source struct {
	mu    sync.RWMutex
	name  string
	rules map[string][]domain.NavigationRule
}

type Option func(*Source)

// WithName overrides the source name reported in verdicts and logs.
func WithName(name string) Option {
	return func(s *Source) {
		s.name = name
	}
}

// New creates an empty in-memory rule source.
func New(opts ...Option) *Source {
	s := &Source{
		name:  "memory",
		rules: make(map[string][]domain.NavigationRule),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

// RulesFor returns the rules for an origin in insertion order.
func (s *Source) RulesFor(ctx context.Context, fromLocation string) ([]domain.NavigationRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Copy so callers can't mutate the table through the returned slice.
	return append([]domain.NavigationRule(nil), s.rules[fromLocation]...), nil
}

// Put appends a rule to its origin's list.
func (s *Source) Put(ctx context.Context, rule domain.NavigationRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules[rule.FromLocation] = append(s.rules[rule.FromLocation], rule)
	return nil
}

// Remove drops all rules for an origin.
func (s *Source) Remove(ctx context.Context, fromLocation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rules, fromLocation)
	return nil
}

// ReplaceAll swaps the whole table for the given rules, validating each.
func (s *Source) ReplaceAll(rules []domain.NavigationRule) error {
	next := make(map[string][]domain.NavigationRule)
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return err
		}
		next[rule.FromLocation] = append(next[rule.FromLocation], rule)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules = next
	return nil
}
