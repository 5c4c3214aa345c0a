package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawhara/restaurant-backend/internal/models"
)

func seedRecommendData(t *testing.T, env *testEnv) uint {
	t.Helper()

	age := 30
	customer := models.Customer{FirstName: "Sara", Email: "sara@example.com", Age: &age}
	require.NoError(t, env.DB.Create(&customer).Error)

	meals := []models.Meal{
		{Name: "Grilled Chicken", Price: 300, MealTime: models.MealTimeLunch},
		{Name: "Pasta", Price: 800, MealTime: models.MealTimeLunch},
		{Name: "Steak", Price: 1200, MealTime: models.MealTimeLunch},
	}
	require.NoError(t, env.DB.Create(&meals).Error)
	return customer.ID
}

func TestRecommendEndpoint(t *testing.T) {
	env := setupTest(t, nil)
	id := seedRecommendData(t, env)

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/ai/recommend/%d", id), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(id), body["customer_id"])

	recs := body["recommendations"].([]interface{})
	require.Len(t, recs, 3)

	// Cheapest meal wins on the price rule, scores arrive descending.
	first := recs[0].(map[string]interface{})
	assert.Equal(t, "Grilled Chicken", first["name"])
	prev := 1.1
	for _, r := range recs {
		score := r.(map[string]interface{})["score"].(float64)
		assert.LessOrEqual(t, score, prev)
		prev = score
	}
}

func TestRecommendTopNQuery(t *testing.T) {
	env := setupTest(t, nil)
	id := seedRecommendData(t, env)

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/ai/recommend/%d?top_n=1", id), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["recommendations"].([]interface{}), 1)

	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/ai/recommend/%d?top_n=abc", id), "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendUnknownCustomerEndpoint(t *testing.T) {
	env := setupTest(t, nil)

	w := env.doJSON(t, http.MethodGet, "/api/v1/ai/recommend/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/v1/ai/recommend/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
