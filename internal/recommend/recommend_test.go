package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOrdersByScoreDescending(t *testing.T) {
	rules := DefaultRules()
	customer := CustomerProfile{Age: 30, HealthCondition: "Diabetic", FavoriteCategory: "1"}

	meals := []MealRecord{
		{ID: 1, Name: "Honey cake", Description: "كيك مع عسل", Price: 100, MealTime: "Lunch", Category: "1"},
		{ID: 2, Name: "Plain rice", Description: "أرز أبيض", Price: 100, MealTime: "Lunch", Category: "1"},
	}

	ranked := Rank(customer, meals, rules, 5)
	require.Len(t, ranked, 2)

	// All else equal, the bad-keyword meal must rank strictly lower.
	assert.Equal(t, uint(2), ranked[0].Meal.ID)
	assert.Equal(t, uint(1), ranked[1].Meal.ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankScoresEveryMealForCustomerWithoutHistory(t *testing.T) {
	// Regression for the chosen empty-history policy: a customer without
	// orders is still scored against every candidate, carrying the
	// "Unknown" favorite category, rather than handed the first N meals.
	rules := DefaultRules()
	customer := CustomerProfile{Age: 30, HealthCondition: "None", FavoriteCategory: "Unknown"}

	meals := []MealRecord{
		{ID: 1, Description: "sweet cake", Price: 1500, MealTime: "Lunch", Category: "1"},
		{ID: 2, Description: "fresh سلطة", Price: 100, MealTime: "Lunch", Category: "2"},
		{ID: 3, Description: "", Price: 100, MealTime: "Lunch", Category: "3"},
	}

	ranked := Rank(customer, meals, rules, 5)
	require.Len(t, ranked, 3)

	// Insertion order would put meal 1 first; scoring must not.
	assert.Equal(t, uint(3), ranked[0].Meal.ID)
	assert.Equal(t, uint(2), ranked[1].Meal.ID)
	assert.Equal(t, uint(1), ranked[2].Meal.ID)

	for _, r := range ranked {
		s := ScoreMeal(customer, r.Meal, rules)
		assert.Equal(t, 0.4, s.Category, "category score against Unknown favorite")
	}
}

func TestRankStableOnTies(t *testing.T) {
	rules := DefaultRules()
	customer := CustomerProfile{Age: 30, HealthCondition: "None", FavoriteCategory: "Unknown"}

	// Identical attributes give identical scores; input order must hold.
	meals := []MealRecord{
		{ID: 10, Description: "fresh", Price: 100, MealTime: "Lunch", Category: "1"},
		{ID: 11, Description: "fresh", Price: 100, MealTime: "Lunch", Category: "2"},
		{ID: 12, Description: "fresh", Price: 100, MealTime: "Lunch", Category: "3"},
	}

	ranked := Rank(customer, meals, rules, 5)
	require.Len(t, ranked, 3)
	assert.Equal(t, uint(10), ranked[0].Meal.ID)
	assert.Equal(t, uint(11), ranked[1].Meal.ID)
	assert.Equal(t, uint(12), ranked[2].Meal.ID)
}

func TestRankTruncatesToTopN(t *testing.T) {
	rules := DefaultRules()
	customer := CustomerProfile{Age: 30, HealthCondition: "None", FavoriteCategory: "Unknown"}

	var meals []MealRecord
	for i := 1; i <= 8; i++ {
		meals = append(meals, MealRecord{ID: uint(i), Price: 100, MealTime: "Lunch"})
	}

	assert.Len(t, Rank(customer, meals, rules, 3), 3)
	// Non-positive topN falls back to the default.
	assert.Len(t, Rank(customer, meals, rules, 0), DefaultTopN)
	assert.Len(t, Rank(customer, meals, rules, 20), 8)
}
