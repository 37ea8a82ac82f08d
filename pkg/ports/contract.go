package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
)

// SourceFactory builds a RuleSource pre-populated with the given rules.
// Each adapter test supplies one so the contract stays storage-agnostic.
type SourceFactory func(t *testing.T, rules []domain.NavigationRule) RuleSource

// RunRuleSourceContract runs a suite of tests to verify that a RuleSource
// implementation adheres to the defined interface contract.
func RunRuleSourceContract(t *testing.T, factory SourceFactory) {
	ctx := context.Background()

	fixture := []domain.NavigationRule{
		{FromLocation: "login", ToLocation: "dashboard", Condition: "success"},
		{FromLocation: "login", ToLocation: "login", Condition: "failure"},
		{FromLocation: "home", ToLocation: "admin", Condition: "goAdmin"},
	}

	t.Run("Rules By Origin", func(t *testing.T) {
		src := factory(t, fixture)

		rules, err := src.RulesFor(ctx, "login")
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, "dashboard", rules[0].ToLocation)
		assert.Equal(t, "login", rules[1].ToLocation)

		rules, err = src.RulesFor(ctx, "home")
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, "goAdmin", rules[0].Condition)
	})

	t.Run("Insertion Order Preserved", func(t *testing.T) {
		ordered := []domain.NavigationRule{
			{FromLocation: "wizard", ToLocation: "step2", Condition: "next"},
			{FromLocation: "wizard", ToLocation: "step1", Condition: "back"},
			{FromLocation: "wizard", ToLocation: "summary", Condition: "skip"},
		}
		src := factory(t, ordered)

		rules, err := src.RulesFor(ctx, "wizard")
		require.NoError(t, err)
		require.Len(t, rules, 3)
		for i, want := range ordered {
			assert.Equal(t, want, rules[i], "rule %d out of order", i)
		}
	})

	t.Run("Unknown Origin Is Empty Not Error", func(t *testing.T) {
		src := factory(t, fixture)

		rules, err := src.RulesFor(ctx, "no-such-view")
		require.NoError(t, err)
		assert.Empty(t, rules)
	})

	t.Run("Restartable", func(t *testing.T) {
		src := factory(t, fixture)

		first, err := src.RulesFor(ctx, "login")
		require.NoError(t, err)
		second, err := src.RulesFor(ctx, "login")
		require.NoError(t, err)
		assert.Equal(t, first, second)

		// Mutating the returned slice must not leak into the source.
		first[0].ToLocation = "tampered"
		third, err := src.RulesFor(ctx, "login")
		require.NoError(t, err)
		assert.Equal(t, "dashboard", third[0].ToLocation)
	})

	t.Run("Name Is Stable", func(t *testing.T) {
		src := factory(t, nil)
		require.NotEmpty(t, src.Name())
		assert.Equal(t, src.Name(), src.Name())
	})
}
