package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jawhara/restaurant-backend/internal/models"
	"github.com/jawhara/restaurant-backend/internal/recommend"
)

func TestMedianAge(t *testing.T) {
	tests := []struct {
		name     string
		ages     []*int
		expected int
	}{
		{"odd count", []*int{intPtr(20), intPtr(40), intPtr(30)}, 30},
		{"even count rounds", []*int{intPtr(20), intPtr(25)}, 23},
		{"nulls ignored", []*int{intPtr(20), nil, intPtr(40), nil}, 30},
		{"all null", []*int{nil, nil}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers := make([]models.Customer, len(tt.ages))
			for i, age := range tt.ages {
				customers[i] = models.Customer{ID: uint(i + 1), Age: age}
			}
			assert.Equal(t, tt.expected, medianAge(customers))
		})
	}
}

func TestBuildProfiles(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Age: intPtr(20), HealthCondition: "Diabetic"},
		{ID: 2, Age: intPtr(40)},
		{ID: 3, Age: nil},
	}
	meals := []models.Meal{
		{ID: 10, CategoryID: uintPtr(1)},
		{ID: 11, CategoryID: uintPtr(2)},
		{ID: 12, CategoryID: nil},
	}
	orders := []models.Order{
		{ID: 1, CustomerID: 1, MealID: 11},
		{ID: 2, CustomerID: 1, MealID: 10},
		{ID: 3, CustomerID: 1, MealID: 10},
		{ID: 4, CustomerID: 2, MealID: 12},
	}

	profiles := buildProfiles(customers, meals, orders)
	require.Len(t, profiles, 3)

	// Modal category wins for customer 1.
	assert.Equal(t, "1", profiles[1].FavoriteCategory)
	assert.Equal(t, "Diabetic", profiles[1].HealthCondition)
	assert.Equal(t, 20, profiles[1].Age)

	// Customer 2 only ordered an uncategorized meal.
	assert.Equal(t, "Unknown", profiles[2].FavoriteCategory)
	assert.Equal(t, "None", profiles[2].HealthCondition)

	// Customer 3 has no age; the median of 20 and 40 is imputed.
	assert.Equal(t, 30, profiles[3].Age)
	assert.Equal(t, "Unknown", profiles[3].FavoriteCategory)
}

func TestFavoriteCategoryTieBreak(t *testing.T) {
	categoryByMeal := map[uint]string{10: "2", 11: "5"}
	orders := []models.Order{
		{ID: 1, CustomerID: 1, MealID: 10},
		{ID: 2, CustomerID: 1, MealID: 11},
	}

	// Equal counts resolve to whichever category appeared first.
	assert.Equal(t, "2", favoriteCategory(orders, categoryByMeal))
}

func TestRecommendEndToEnd(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecommendationService(db, recommend.DefaultRules(), nil, 5, zap.NewNop())

	require.NoError(t, db.Create(&models.MealCategory{ID: 1, CategoryName: "Grills"}).Error)
	require.NoError(t, db.Create(&models.MealCategory{ID: 2, CategoryName: "Desserts"}).Error)

	meals := []models.Meal{
		{ID: 1, Name: "Grilled Chicken", Price: 300, MealTime: models.MealTimeLunch, CategoryID: uintPtr(1)},
		{ID: 2, Name: "Pasta", Price: 300, MealTime: models.MealTimeLunch, CategoryID: uintPtr(2)},
		{ID: 3, Name: "Steak", Price: 600, MealTime: models.MealTimeLunch, CategoryID: uintPtr(1)},
	}
	require.NoError(t, db.Create(&meals).Error)

	customer := models.Customer{ID: 1, FirstName: "Sara", Email: "sara@example.com", Age: intPtr(30)}
	require.NoError(t, db.Create(&customer).Error)
	require.NoError(t, db.Create(&models.Order{CustomerID: 1, MealID: 1, Quantity: 1}).Error)

	result, err := svc.Recommend(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, result, 3)

	// Favorite category and cheap price push the grilled chicken first,
	// the pricier steak second and the off-category pasta last.
	assert.Equal(t, uint(1), result[0].MealID)
	assert.InDelta(t, 0.9, result[0].Score, 1e-9)
	assert.Equal(t, uint(3), result[1].MealID)
	assert.InDelta(t, 0.87, result[1].Score, 1e-9)
	assert.Equal(t, uint(2), result[2].MealID)
	assert.InDelta(t, 0.81, result[2].Score, 1e-9)
}

func TestRecommendTopNTruncates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecommendationService(db, recommend.DefaultRules(), nil, 5, zap.NewNop())

	require.NoError(t, db.Create(&models.Customer{ID: 1, Email: "a@example.com", Age: intPtr(30)}).Error)
	for i := 1; i <= 4; i++ {
		require.NoError(t, db.Create(&models.Meal{ID: uint(i), Name: "Meal", Price: 100, MealTime: models.MealTimeLunch}).Error)
	}

	result, err := svc.Recommend(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestRecommendUnknownCustomer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecommendationService(db, recommend.DefaultRules(), nil, 5, zap.NewNop())

	_, err := svc.Recommend(context.Background(), 42, 0)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
