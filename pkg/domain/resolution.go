package domain

import "fmt"

// ResolutionRequest describes a single navigation event. It is consumed
// once per Resolve call and never stored.
type ResolutionRequest struct {
	FromLocation string `json:"from_location"`

	// ActionToken identifies the UI action that triggered navigation.
	// It may be empty; the resolver carries it for observability but does
	// not match on it.
	ActionToken string `json:"action_token,omitempty"`

	Outcome string `json:"outcome"`
}

// Validate checks that the request carries the fields matching requires.
func (req ResolutionRequest) Validate() error {
	if req.FromLocation == "" {
		return fmt.Errorf("%w: empty from_location", ErrInvalidRequest)
	}
	if req.Outcome == "" {
		return fmt.Errorf("%w: empty outcome", ErrInvalidRequest)
	}
	return nil
}

// Resolution is the verdict of a resolve call: either a destination
// location, or unresolved, which tells the caller to apply its own
// default behavior. Unresolved is a normal outcome, not an error.
type Resolution struct {
	Resolved   bool   `json:"resolved"`
	ToLocation string `json:"to_location,omitempty"`

	// Source names the rule source that produced the match. Empty when
	// unresolved.
	Source string `json:"source,omitempty"`
}

// ResolvedTo builds a successful resolution verdict.
func ResolvedTo(toLocation, source string) Resolution {
	return Resolution{Resolved: true, ToLocation: toLocation, Source: source}
}

// Unresolved builds the no-decision verdict.
func Unresolved() Resolution {
	return Resolution{}
}
