package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jawhara/restaurant-backend/internal/models"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrUnknownCategory = errors.New("category does not exist")
)

// MealService handles meal and meal category operations
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// MealWithCategory is a meal row joined with its category name, the shape
// the listing endpoint returns.
type MealWithCategory struct {
	models.Meal
	CategoryName string `json:"category_name"`
}

// ListMeals returns all meals with their category names, newest first.
func (s *MealService) ListMeals(ctx context.Context) ([]MealWithCategory, error) {
	var meals []MealWithCategory
	err := s.db.WithContext(ctx).
		Table("meals").
		Select("meals.*, meal_categories.category_name").
		Joins("LEFT JOIN meal_categories ON meals.category_id = meal_categories.category_id").
		Order("meals.meal_id DESC").
		Scan(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

// GetMeal retrieves a meal by ID
func (s *MealService) GetMeal(ctx context.Context, id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).First(&meal, "meal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// CreateMeal creates a meal after checking its category exists.
func (s *MealService) CreateMeal(ctx context.Context, meal *models.Meal) error {
	if meal.CategoryID != nil {
		if err := s.categoryExists(ctx, *meal.CategoryID); err != nil {
			return err
		}
	}
	return s.db.WithContext(ctx).Create(meal).Error
}

// UpdateMeal updates a meal. An empty ImageURL keeps the stored image.
func (s *MealService) UpdateMeal(ctx context.Context, id uint, meal *models.Meal) (*models.Meal, error) {
	if meal.CategoryID != nil {
		if err := s.categoryExists(ctx, *meal.CategoryID); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{
		"name":        meal.Name,
		"description": meal.Description,
		"price":       meal.Price,
		"meal_time":   meal.MealTime,
		"category_id": meal.CategoryID,
	}
	if meal.ImageURL != "" {
		updates["image_url"] = meal.ImageURL
	}

	res := s.db.WithContext(ctx).Model(&models.Meal{}).Where("meal_id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetMeal(ctx, id)
}

// DeleteMeal deletes a meal
func (s *MealService) DeleteMeal(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Meal{}, "meal_id = ?", id).Error
}

// ListCategories returns all meal categories ordered by name.
func (s *MealService) ListCategories(ctx context.Context) ([]models.MealCategory, error) {
	var categories []models.MealCategory
	if err := s.db.WithContext(ctx).Order("category_name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a meal category
func (s *MealService) CreateCategory(ctx context.Context, category *models.MealCategory) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *MealService) categoryExists(ctx context.Context, id uint) error {
	var category models.MealCategory
	if err := s.db.WithContext(ctx).First(&category, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownCategory
		}
		return err
	}
	return nil
}
