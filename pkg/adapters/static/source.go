package static

import (
	"context"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
	"gopkg.in/yaml.v3"
)

// rulesFile is the on-disk shape of a static rules document:
//
//	rules:
//	  - from: login
//	    to: dashboard
//	    condition: success
//
// Rule entries are decoded loosely first so unknown keys can be reported
// with their rule index instead of a bare YAML error.
type rulesFile struct {
	Rules []map[string]any `yaml:"rules"`
}

// FromRules builds a static source from an in-code rule table. Every rule
// is validated; the first invalid rule rejects the whole set.
func FromRules(rules []domain.NavigationRule) (*Source, error) {
	table := make(map[string][]domain.NavigationRule)
	for i, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		table[rule.FromLocation] = append(table[rule.FromLocation], rule)
	}
	return &Source{rules: table}, nil
}

// Load reads and validates a YAML rules document. The table is fixed after
// load; static configuration has no runtime mutation.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return Parse(data)
}

// Parse builds a static source from raw YAML.
func Parse(data []byte) (*Source, error) {
	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules document: %w", err)
	}

	rules := make([]domain.NavigationRule, 0, len(file.Rules))
	for i, raw := range file.Rules {
		var rule domain.NavigationRule
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &rule,
			ErrorUnused: true,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(raw); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, rule)
	}

	return FromRules(rules)
}

// Source implements ports.RuleSource over a fixed, load-time-populated
// table. It is immutable after construction and therefore safe for
// concurrent queries without locking.
type Source struct {
	rules map[string][]domain.NavigationRule
}

func (s *Source) Name() string {
	return "static"
}

// RulesFor returns the configured rules for an origin in file order.
func (s *Source) RulesFor(ctx context.Context, fromLocation string) ([]domain.NavigationRule, error) {
	return append([]domain.NavigationRule(nil), s.rules[fromLocation]...), nil
}

// Len reports the total number of configured rules.
func (s *Source) Len() int {
	n := 0
	for _, rules := range s.rules {
		n += len(rules)
	}
	return n
}
