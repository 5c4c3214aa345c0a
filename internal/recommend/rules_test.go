package recommend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesCoverKnownConditions(t *testing.T) {
	rules := DefaultRules()
	assert.Contains(t, rules.Conditions, "Diabetic")
	assert.Contains(t, rules.Conditions, "Hypertension")
	assert.NotEmpty(t, rules.HealthyWords)
}

func TestLoadRulesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := []byte(`conditions:
  Celiac:
    bad: ["wheat", "gluten"]
    good: ["rice"]
healthy_words: ["organic"]
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	celiac, ok := rules.rulesFor("Celiac")
	require.True(t, ok)
	assert.Equal(t, []string{"wheat", "gluten"}, celiac.Bad)
	assert.Equal(t, []string{"organic"}, rules.HealthyWords)

	// A loaded rule set drives the scorers like the built-in one.
	assert.InDelta(t, 0.3, HealthScore("wheat bread", "Celiac", rules), 1e-9)
	assert.Equal(t, 1.0, HealthScore("wheat bread", "Diabetic", rules))
}

func TestLoadRulesMissingSectionsFallBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`healthy_words: ["light"]`), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultRules().Conditions, rules.Conditions)
	assert.Equal(t, []string{"light"}, rules.HealthyWords)
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
