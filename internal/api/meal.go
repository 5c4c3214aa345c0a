package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jawhara/restaurant-backend/internal/middleware"
	"github.com/jawhara/restaurant-backend/internal/models"
	"github.com/jawhara/restaurant-backend/internal/service"
)

// MealHandler serves the meal and category endpoints. Meal writes
// invalidate cached recommendations since they change the candidate set.
type MealHandler struct {
	meals  *service.MealService
	auth   *service.AuthService
	images ImageUploader
	recs   *service.RecommendationService
	logger *zap.Logger
}

func NewMealHandler(meals *service.MealService, auth *service.AuthService, images ImageUploader, recs *service.RecommendationService, logger *zap.Logger) *MealHandler {
	return &MealHandler{
		meals:  meals,
		auth:   auth,
		images: images,
		recs:   recs,
		logger: logger,
	}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	authRequired := middleware.AuthMiddleware(h.auth)

	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.GET("/:id", h.GetMeal)
		meals.POST("", authRequired, h.CreateMeal)
		meals.PUT("/:id", authRequired, h.UpdateMeal)
		meals.DELETE("/:id", authRequired, h.DeleteMeal)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", authRequired, h.CreateCategory)
	}
}

// mealForm is the multipart payload for meal writes; the image arrives as
// a separate file part named "image".
type mealForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" binding:"required"`
	MealTime    string  `form:"meal_time"`
	CategoryID  *uint   `form:"category_id"`
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	meals, err := h.meals.ListMeals(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list meals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch meals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	meal, err := h.meals.GetMeal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		h.logger.Error("failed to fetch meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch meal"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	var form mealForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL, ok := readFormImage(c, h.images, "meals")
	if !ok {
		return
	}

	meal := models.Meal{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		MealTime:    form.MealTime,
		CategoryID:  form.CategoryID,
		ImageURL:    imageURL,
	}
	if err := h.meals.CreateMeal(c.Request.Context(), &meal); err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category does not exist"})
			return
		}
		h.logger.Error("failed to create meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create meal"})
		return
	}

	h.invalidateRecommendations(c)
	c.JSON(http.StatusCreated, meal)
}

func (h *MealHandler) UpdateMeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form mealForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL, ok := readFormImage(c, h.images, "meals")
	if !ok {
		return
	}

	meal, err := h.meals.UpdateMeal(c.Request.Context(), id, &models.Meal{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		MealTime:    form.MealTime,
		CategoryID:  form.CategoryID,
		ImageURL:    imageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		case errors.Is(err, service.ErrUnknownCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "category does not exist"})
		default:
			h.logger.Error("failed to update meal", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update meal"})
		}
		return
	}

	h.invalidateRecommendations(c)
	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.meals.DeleteMeal(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal"})
		return
	}

	h.invalidateRecommendations(c)
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

func (h *MealHandler) ListCategories(c *gin.Context) {
	categories, err := h.meals.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type categoryRequest struct {
	CategoryName string `json:"category_name" binding:"required"`
}

func (h *MealHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.MealCategory{CategoryName: req.CategoryName}
	if err := h.meals.CreateCategory(c.Request.Context(), &category); err != nil {
		h.logger.Error("failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *MealHandler) invalidateRecommendations(c *gin.Context) {
	if h.recs != nil {
		h.recs.InvalidateAll(c.Request.Context())
	}
}
