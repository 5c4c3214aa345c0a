package recommend

import (
	"math"
	"strings"
)

// Weights of the five sub-scores in the final score. They sum to 1.0.
const (
	weightHealth      = 0.4
	weightDescription = 0.2
	weightCategory    = 0.15
	weightAge         = 0.15
	weightPrice       = 0.1
)

const (
	badKeywordPenalty = 0.7
	goodKeywordBonus  = 0.4
	healthyWordBonus  = 0.2
)

// Scores holds the five sub-scores and the weighted final score for one
// customer/meal pair.
type Scores struct {
	Health      float64 `json:"health"`
	Description float64 `json:"description"`
	Category    float64 `json:"category"`
	Age         float64 `json:"age"`
	Price       float64 `json:"price"`
	Final       float64 `json:"final"`
}

// HealthScore rates a meal description against the keyword rules for the
// customer's health condition. An empty description or a condition without
// a rule set is a neutral pass. Each bad keyword found as a case-insensitive
// substring subtracts 0.7, each good keyword adds 0.4; matches stack. The
// result is clamped at zero but has no upper bound.
func HealthScore(description, condition string, rules RuleSet) float64 {
	if description == "" {
		return 1.0
	}
	cond, ok := rules.rulesFor(condition)
	if !ok {
		return 1.0
	}

	desc := strings.ToLower(description)
	score := 1.0

	for _, bad := range cond.Bad {
		if strings.Contains(desc, strings.ToLower(bad)) {
			score -= badKeywordPenalty
		}
	}
	for _, good := range cond.Good {
		if strings.Contains(desc, strings.ToLower(good)) {
			score += goodKeywordBonus
		}
	}

	return math.Max(score, 0)
}

// DescriptionScore rates how healthy a description sounds: 0.2 per healthy
// vocabulary word found, capped at 1.0. An empty description scores 0.5.
func DescriptionScore(description string, rules RuleSet) float64 {
	if description == "" {
		return 0.5
	}

	desc := strings.ToLower(description)
	score := 0.0
	for _, w := range rules.HealthyWords {
		if strings.Contains(desc, strings.ToLower(w)) {
			score += healthyWordBonus
		}
	}

	return math.Min(score, 1.0)
}

// CategoryScore is a binary affinity signal: 1.0 when the meal category
// matches the customer's favorite, 0.4 otherwise.
func CategoryScore(mealCategory, favoriteCategory string) float64 {
	if mealCategory == favoriteCategory {
		return 1.0
	}
	return 0.4
}

// AgeScore penalizes late-night meals for minors and heavy meals for
// customers over fifty. The two labels are distinct so the conditions
// cannot both hold.
func AgeScore(age int, mealTime string) float64 {
	if age < 18 && mealTime == "LateNight" {
		return 0.2
	}
	if age > 50 && mealTime == "Heavy" {
		return 0.4
	}
	return 1.0
}

// PriceScore brackets the price: under 500 is 1.0, under 1000 is 0.7,
// anything else 0.4. Boundary values fall into the lower bracket.
func PriceScore(price float64) float64 {
	if price < 500 {
		return 1.0
	}
	if price < 1000 {
		return 0.7
	}
	return 0.4
}

// ScoreMeal computes all five sub-scores for one customer/meal pair and the
// weighted final score, rounded to three decimals.
func ScoreMeal(customer CustomerProfile, meal MealRecord, rules RuleSet) Scores {
	s := Scores{
		Health:      HealthScore(meal.Description, customer.HealthCondition, rules),
		Description: DescriptionScore(meal.Description, rules),
		Category:    CategoryScore(meal.Category, customer.FavoriteCategory),
		Age:         AgeScore(customer.Age, meal.MealTime),
		Price:       PriceScore(meal.Price),
	}
	s.Final = round3(
		s.Health*weightHealth +
			s.Description*weightDescription +
			s.Category*weightCategory +
			s.Age*weightAge +
			s.Price*weightPrice)
	return s
}

// round3 rounds half away from zero to three decimal places.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
