package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthScoreNeutralCases(t *testing.T) {
	rules := DefaultRules()

	// Empty description is a neutral pass.
	assert.Equal(t, 1.0, HealthScore("", "Diabetic", rules))

	// Conditions without a rule set always pass, whatever the description.
	assert.Equal(t, 1.0, HealthScore("sweet cake with عسل", "None", rules))
	assert.Equal(t, 1.0, HealthScore("fried and salty", "Asthma", rules))
}

func TestHealthScorePenaltiesAndBonuses(t *testing.T) {
	rules := DefaultRules()

	// One bad keyword: 1.0 - 0.7
	assert.InDelta(t, 0.3, HealthScore("طبق مع عسل", "Diabetic", rules), 1e-9)

	// Penalties stack and the score never goes negative.
	assert.Equal(t, 0.0, HealthScore("sweet cake بالسكر", "Diabetic", rules))

	// Good keywords add back; matching is case-insensitive.
	assert.InDelta(t, 1.4, HealthScore("دجاج مشوي", "Diabetic", rules), 1e-9)
	assert.InDelta(t, 0.7, HealthScore("Sweet سلطة", "Diabetic", rules), 1e-9)
}

func TestHealthScoreNeverNegative(t *testing.T) {
	rules := DefaultRules()
	descriptions := []string{
		"سكر عسل sweet cake",
		"ملح fried مقلي",
		"cake cake sweet عسل سكر",
	}
	for _, d := range descriptions {
		for cond := range rules.Conditions {
			assert.GreaterOrEqual(t, HealthScore(d, cond, rules), 0.0, "desc=%q cond=%q", d, cond)
		}
	}
}

func TestDescriptionScore(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, 0.5, DescriptionScore("", rules))
	assert.Equal(t, 0.0, DescriptionScore("plain rice", rules))
	assert.InDelta(t, 0.2, DescriptionScore("Fresh juice", rules), 1e-9)
	assert.InDelta(t, 0.4, DescriptionScore("fresh سلطة", rules), 1e-9)

	// The sum is capped at 1.0 even if every word matches.
	assert.InDelta(t, 0.8, DescriptionScore("fresh طبيعي سلطة مشوي", rules), 1e-9)
	assert.LessOrEqual(t, DescriptionScore("fresh fresh طبيعي سلطة مشوي fresh", rules), 1.0)
}

func TestCategoryScore(t *testing.T) {
	assert.Equal(t, 1.0, CategoryScore("3", "3"))
	assert.Equal(t, 0.4, CategoryScore("3", "7"))
	assert.Equal(t, 1.0, CategoryScore("Unknown", "Unknown"))
	assert.Equal(t, 0.4, CategoryScore("", "Unknown"))
}

func TestAgeScore(t *testing.T) {
	assert.Equal(t, 0.2, AgeScore(17, "LateNight"))
	assert.Equal(t, 0.4, AgeScore(51, "Heavy"))
	assert.Equal(t, 1.0, AgeScore(30, "Lunch"))
	assert.Equal(t, 1.0, AgeScore(18, "LateNight"))
	assert.Equal(t, 1.0, AgeScore(50, "Heavy"))
	assert.Equal(t, 1.0, AgeScore(17, "Heavy"))
	assert.Equal(t, 1.0, AgeScore(51, "LateNight"))
}

func TestPriceScoreBrackets(t *testing.T) {
	assert.Equal(t, 1.0, PriceScore(0))
	assert.Equal(t, 1.0, PriceScore(499))
	assert.Equal(t, 0.7, PriceScore(500))
	assert.Equal(t, 0.7, PriceScore(999))
	assert.Equal(t, 0.4, PriceScore(1000))
	assert.Equal(t, 0.4, PriceScore(2500))
}

func TestScoreMealWeightedSum(t *testing.T) {
	rules := DefaultRules()

	customer := CustomerProfile{Age: 30, HealthCondition: "None", FavoriteCategory: "2"}
	meal := MealRecord{Description: "fresh طبيعي سلطة مشوي", Price: 100, MealTime: "Lunch", Category: "2"}
	s := ScoreMeal(customer, meal, rules)
	assert.Equal(t, 1.0, s.Health)
	assert.InDelta(t, 0.8, s.Description, 1e-9)
	assert.Equal(t, 1.0, s.Category)
	assert.Equal(t, 1.0, s.Age)
	assert.Equal(t, 1.0, s.Price)
	// 0.4 + 0.16 + 0.15 + 0.15 + 0.1
	assert.Equal(t, 0.96, s.Final)
}

func TestRound3FixedTuples(t *testing.T) {
	// Direct verification of the aggregation formula for fixed tuples.
	assert.Equal(t, 1.0, round3(0.4*1.0+0.2*1.0+0.15*1.0+0.15*1.0+0.1*1.0))
	// (0.0, 0.5, 0.4, 1.0, 0.7) -> 0 + 0.1 + 0.06 + 0.15 + 0.07 = 0.38
	assert.Equal(t, 0.38, round3(0.4*0.0+0.2*0.5+0.15*0.4+0.15*1.0+0.1*0.7))
	// Rounding is half away from zero.
	assert.Equal(t, 0.001, round3(0.0005))
	assert.Equal(t, 0.123, round3(0.12349))
}
