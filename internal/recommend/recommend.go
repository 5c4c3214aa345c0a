// Package recommend implements the meal recommendation scoring engine: five
// independent rule scorers over customer and meal attributes, combined into
// one weighted score per pair and ranked.
package recommend

import "sort"

// DefaultTopN is the number of meals returned when the caller does not ask
// for a specific count.
const DefaultTopN = 5

// CustomerProfile is the scoring view of a customer after the loader has
// applied its derivations: age imputed with the population median, health
// condition defaulted to "None", favorite category derived from order
// history or "Unknown".
type CustomerProfile struct {
	ID               uint
	Age              int
	HealthCondition  string
	FavoriteCategory string
}

// MealRecord is the scoring view of a meal. Category is the category id in
// string form, empty when the meal has none.
type MealRecord struct {
	ID          uint
	Name        string
	Description string
	Price       float64
	MealTime    string
	Category    string
	ImageURL    string
}

// RankedMeal pairs a candidate meal with its final score.
type RankedMeal struct {
	Meal  MealRecord
	Score float64
}

// Rank scores every candidate meal for the customer and returns the topN
// highest by descending final score. Every meal is scored regardless of the
// customer's order history; a customer without history simply carries the
// "Unknown" favorite category. Ties keep the original candidate order.
func Rank(customer CustomerProfile, meals []MealRecord, rules RuleSet, topN int) []RankedMeal {
	if topN <= 0 {
		topN = DefaultTopN
	}

	ranked := make([]RankedMeal, 0, len(meals))
	for _, m := range meals {
		ranked = append(ranked, RankedMeal{
			Meal:  m,
			Score: ScoreMeal(customer, m, rules).Final,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
