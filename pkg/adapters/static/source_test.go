package static_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/adapters/static"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/ports"
)

func TestStaticSource_Contract(t *testing.T) {
	ports.RunRuleSourceContract(t, func(t *testing.T, rules []domain.NavigationRule) ports.RuleSource {
		src, err := static.FromRules(rules)
		require.NoError(t, err)
		return src
	})
}

func TestParse_ValidDocument(t *testing.T) {
	doc := []byte(`
rules:
  - from: login
    to: dashboard
    condition: success
  - from: login
    to: login
    condition: failure
  - from: home
    to: admin
    condition: goAdmin
`)

	src, err := static.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, 3, src.Len())

	rules, err := src.RulesFor(context.Background(), "login")
	require.NoError(t, err)
	require.Len(t, rules, 2)
	// File order is insertion order.
	assert.Equal(t, "dashboard", rules[0].ToLocation)
	assert.Equal(t, "login", rules[1].ToLocation)
}

func TestParse_RejectsInvalidRule(t *testing.T) {
	doc := []byte(`
rules:
  - from: login
    to: dashboard
    condition: success
  - from: login
    to: somewhere
`)

	_, err := static.Parse(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRule)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	doc := []byte(`
rules:
  - from: login
    to: dashboard
    condition: success
    priority: 3
`)

	_, err := static.Parse(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule 0")
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := static.Parse([]byte("rules: [of engagement"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navigation.yaml")
	doc := `
rules:
  - from: login
    to: dashboard
    condition: success
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	src, err := static.Load(path)
	require.NoError(t, err)

	rules, err := src.RulesFor(context.Background(), "login")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "dashboard", rules[0].ToLocation)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := static.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestFromRules_EmptyIsAllowed(t *testing.T) {
	src, err := static.FromRules(nil)
	require.NoError(t, err)

	rules, err := src.RulesFor(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, rules)
}
