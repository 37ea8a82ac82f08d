package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/adapters/memory"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/ports"
)

func TestMemorySource_Contract(t *testing.T) {
	ports.RunRuleSourceContract(t, func(t *testing.T, rules []domain.NavigationRule) ports.RuleSource {
		src := memory.New()
		require.NoError(t, src.ReplaceAll(rules))
		return src
	})
}

func TestMemorySource_PutRejectsInvalid(t *testing.T) {
	src := memory.New()
	err := src.Put(context.Background(), domain.NavigationRule{FromLocation: "login", ToLocation: "dashboard"})
	assert.ErrorIs(t, err, domain.ErrInvalidRule)
}

func TestMemorySource_Remove(t *testing.T) {
	ctx := context.Background()
	src := memory.New()

	require.NoError(t, src.Put(ctx, domain.NavigationRule{FromLocation: "login", ToLocation: "dashboard", Condition: "success"}))
	require.NoError(t, src.Remove(ctx, "login"))

	rules, err := src.RulesFor(ctx, "login")
	require.NoError(t, err)
	assert.Empty(t, rules)

	// Removing an unknown origin is a no-op.
	assert.NoError(t, src.Remove(ctx, "missing"))
}

func TestMemorySource_Name(t *testing.T) {
	assert.Equal(t, "memory", memory.New().Name())
	assert.Equal(t, "db", memory.New(memory.WithName("db")).Name())
}

func TestMemorySource_ReplaceAllRejectsInvalid(t *testing.T) {
	src := memory.New()
	require.NoError(t, src.Put(context.Background(), domain.NavigationRule{FromLocation: "a", ToLocation: "b", Condition: "c"}))

	err := src.ReplaceAll([]domain.NavigationRule{
		{FromLocation: "login", ToLocation: "dashboard", Condition: "success"},
		{FromLocation: "login", ToLocation: "dashboard"},
	})
	require.ErrorIs(t, err, domain.ErrInvalidRule)

	// Failed replace must leave the previous table intact.
	rules, err := src.RulesFor(context.Background(), "a")
	require.NoError(t, err)
	assert.Len(t, rules, 1)
}
