package models

import (
	"time"
)

// Meal time labels recognized by the scoring rules.
const (
	MealTimeBreakfast = "Breakfast"
	MealTimeLunch     = "Lunch"
	MealTimeDinner    = "Dinner"
	MealTimeLateNight = "LateNight"
	MealTimeHeavy     = "Heavy"
	MealTimeAlways    = "Always"
)

type MealCategory struct {
	ID           uint   `gorm:"column:category_id;primaryKey" json:"category_id"`
	CategoryName string `gorm:"size:100;uniqueIndex;not null" json:"category_name"`
}

func (MealCategory) TableName() string { return "meal_categories" }

type Meal struct {
	ID          uint      `gorm:"column:meal_id;primaryKey" json:"meal_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	MealTime    string    `gorm:"size:20" json:"meal_time"`
	CategoryID  *uint     `json:"category_id"`
	ImageURL    string    `gorm:"size:255" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Meal) TableName() string { return "meals" }
