package recommend

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConditionRules holds the keyword lists for a single health condition.
// Bad keywords penalize a meal, good keywords reward it.
type ConditionRules struct {
	Bad  []string `mapstructure:"bad" json:"bad"`
	Good []string `mapstructure:"good" json:"good"`
}

// RuleSet is the external configuration for the scoring rules. Conditions
// maps a health condition name to its keyword lists; HealthyWords is the
// vocabulary used by the description score.
type RuleSet struct {
	Conditions   map[string]ConditionRules `mapstructure:"conditions" json:"conditions"`
	HealthyWords []string                  `mapstructure:"healthy_words" json:"healthy_words"`
}

// rulesFor returns the keyword lists for a condition. The name is matched
// case-insensitively because viper folds map key case when a rules file is
// loaded from disk.
func (r RuleSet) rulesFor(condition string) (ConditionRules, bool) {
	if c, ok := r.Conditions[condition]; ok {
		return c, true
	}
	for name, c := range r.Conditions {
		if strings.EqualFold(name, condition) {
			return c, true
		}
	}
	return ConditionRules{}, false
}

// DefaultRules returns the built-in rule tables. They are used whenever no
// rules file is configured.
func DefaultRules() RuleSet {
	return RuleSet{
		Conditions: map[string]ConditionRules{
			"Diabetic": {
				Bad:  []string{"سكر", "عسل", "sweet", "cake"},
				Good: []string{"مشوي", "سلطة", "بدون سكر"},
			},
			"Hypertension": {
				Bad:  []string{"ملح", "fried", "مقلي"},
				Good: []string{"steam", "مشوي", "low salt"},
			},
		},
		HealthyWords: []string{"fresh", "طبيعي", "سلطة", "مشوي"},
	}
}

// LoadRules reads a rule set from a YAML file. Missing sections fall back
// to the defaults so a partial file only overrides what it names.
func LoadRules(path string) (RuleSet, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return RuleSet{}, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var rules RuleSet
	if err := v.Unmarshal(&rules); err != nil {
		return RuleSet{}, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	defaults := DefaultRules()
	if rules.Conditions == nil {
		rules.Conditions = defaults.Conditions
	}
	if len(rules.HealthyWords) == 0 {
		rules.HealthyWords = defaults.HealthyWords
	}

	return rules, nil
}
