package domain

import "fmt"

// NavigationRule defines a single routing decision: when application logic
// at FromLocation produces the Condition token, navigation proceeds to
// ToLocation.
type NavigationRule struct {
	FromLocation string `json:"from_location" yaml:"from" mapstructure:"from"`
	ToLocation   string `json:"to_location" yaml:"to" mapstructure:"to"`

	// Condition is the outcome token that must match exactly for this rule
	// to apply. Matching is case-sensitive; there are no wildcards. A rule
	// with an empty Condition is never matchable and is rejected on load.
	Condition string `json:"condition" yaml:"condition" mapstructure:"condition"`
}

// Validate checks the rule invariants: all three fields must be non-empty.
func (r NavigationRule) Validate() error {
	if r.FromLocation == "" {
		return fmt.Errorf("%w: empty from_location", ErrInvalidRule)
	}
	if r.ToLocation == "" {
		return fmt.Errorf("%w: empty to_location (rule from %q)", ErrInvalidRule, r.FromLocation)
	}
	if r.Condition == "" {
		return fmt.Errorf("%w: empty condition (rule from %q)", ErrInvalidRule, r.FromLocation)
	}
	return nil
}

// Matches reports whether this rule applies to the given outcome token.
func (r NavigationRule) Matches(outcome string) bool {
	return r.Condition != "" && r.Condition == outcome
}
