package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawhara/restaurant-backend/internal/models"
)

func TestCreateMealRequiresAuth(t *testing.T) {
	env := setupTest(t, nil)

	w := env.doForm(t, http.MethodPost, "/api/v1/meals", "", map[string]string{
		"name": "Kebab", "price": "450",
	}, "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndListMealsEndpoint(t *testing.T) {
	env := setupTest(t, nil)
	token, _ := env.registerCustomer(t, "chef@example.com")

	w := env.doJSON(t, http.MethodPost, "/api/v1/categories", token, map[string]string{
		"category_name": "Grills",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := int(decodeBody(t, w)["category_id"].(float64))

	w = env.doForm(t, http.MethodPost, "/api/v1/meals", token, map[string]string{
		"name":        "Kebab",
		"description": "charcoal grilled",
		"price":       "450",
		"meal_time":   models.MealTimeDinner,
		"category_id": fmt.Sprint(categoryID),
	}, "", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/v1/meals", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	meals := decodeBody(t, w)["meals"].([]interface{})
	require.Len(t, meals, 1)
	meal := meals[0].(map[string]interface{})
	assert.Equal(t, "Kebab", meal["name"])
	assert.Equal(t, "Grills", meal["category_name"])
}

func TestCreateMealUnknownCategoryEndpoint(t *testing.T) {
	env := setupTest(t, nil)
	token, _ := env.registerCustomer(t, "chef@example.com")

	w := env.doForm(t, http.MethodPost, "/api/v1/meals", token, map[string]string{
		"name": "Ghost", "price": "10", "category_id": "99",
	}, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMealWithImage(t *testing.T) {
	uploader := &fakeUploader{url: "https://restaurant-images.s3.amazonaws.com/meals/abc.png"}
	env := setupTest(t, uploader)
	token, _ := env.registerCustomer(t, "chef@example.com")

	w := env.doForm(t, http.MethodPost, "/api/v1/meals", token, map[string]string{
		"name": "Salad", "price": "120",
	}, "image", "salad.png", []byte("png-bytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, "salad.png", uploader.lastFilename)
	assert.Equal(t, uploader.url, decodeBody(t, w)["image_url"])
}

func TestCreateMealImageWithoutStorage(t *testing.T) {
	env := setupTest(t, nil)
	token, _ := env.registerCustomer(t, "chef@example.com")

	w := env.doForm(t, http.MethodPost, "/api/v1/meals", token, map[string]string{
		"name": "Salad", "price": "120",
	}, "image", "salad.png", []byte("png-bytes"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetMealEndpoint(t *testing.T) {
	env := setupTest(t, nil)
	require.NoError(t, env.DB.Create(&models.Meal{Name: "Falafel", Price: 80}).Error)

	w := env.doJSON(t, http.MethodGet, "/api/v1/meals/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/v1/meals/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/v1/meals/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMealEndpoint(t *testing.T) {
	env := setupTest(t, nil)
	token, _ := env.registerCustomer(t, "chef@example.com")
	meal := models.Meal{Name: "Shawarma", Price: 200, ImageURL: "https://img.example.com/old.png"}
	require.NoError(t, env.DB.Create(&meal).Error)

	w := env.doForm(t, http.MethodPut, fmt.Sprintf("/api/v1/meals/%d", meal.ID), token, map[string]string{
		"name": "Shawarma Plate", "price": "250",
	}, "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Shawarma Plate", body["name"])
	// No new image uploaded, the stored one stays.
	assert.Equal(t, "https://img.example.com/old.png", body["image_url"])
}

func TestDeleteMealEndpoint(t *testing.T) {
	env := setupTest(t, nil)
	token, _ := env.registerCustomer(t, "chef@example.com")
	meal := models.Meal{Name: "Temp", Price: 10}
	require.NoError(t, env.DB.Create(&meal).Error)

	w := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/v1/meals/%d", meal.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Meal{}).Count(&count).Error)
	assert.Zero(t, count)
}
