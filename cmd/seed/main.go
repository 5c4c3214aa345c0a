package main

import (
	"fmt"
	"log"

	"github.com/jawhara/restaurant-backend/config"
	"github.com/jawhara/restaurant-backend/internal/database"
	"github.com/jawhara/restaurant-backend/internal/models"
)

var categories = []models.MealCategory{
	{CategoryName: "Grills"},
	{CategoryName: "Salads"},
	{CategoryName: "Desserts"},
	{CategoryName: "Drinks"},
}

var meals = []struct {
	Name        string
	Description string
	Price       float64
	MealTime    string
	Category    string
}{
	{"Grilled Chicken", "دجاج مشوي fresh مع سلطة", 350, models.MealTimeLunch, "Grills"},
	{"Kofta Plate", "كفتة مشوي على الفحم", 420, models.MealTimeDinner, "Grills"},
	{"Fried Shrimp", "جمبري مقلي", 650, models.MealTimeDinner, "Grills"},
	{"Green Salad", "سلطة خضراء fresh طبيعي", 90, models.MealTimeAlways, "Salads"},
	{"Fattoush", "سلطة فتوش low salt", 110, models.MealTimeAlways, "Salads"},
	{"Basbousa", "بسبوسة بالعسل sweet", 80, models.MealTimeAlways, "Desserts"},
	{"Honey Cake", "cake بالعسل والسكر", 150, models.MealTimeLateNight, "Desserts"},
	{"Fresh Juice", "عصير fresh طبيعي بدون سكر", 60, models.MealTimeAlways, "Drinks"},
	{"Mixed Grill", "مشويات heavy للعشاء", 1200, models.MealTimeHeavy, "Grills"},
}

var tables = []models.Table{
	{TableNumber: 1, Capacity: 2},
	{TableNumber: 2, Capacity: 4},
	{TableNumber: 3, Capacity: 4},
	{TableNumber: 4, Capacity: 6},
	{TableNumber: 5, Capacity: 8},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	categoryIDs := map[string]uint{}
	for i := range categories {
		c := categories[i]
		if err := db.Where("category_name = ?", c.CategoryName).FirstOrCreate(&c).Error; err != nil {
			log.Fatalf("failed to seed category %q: %v", c.CategoryName, err)
		}
		categoryIDs[c.CategoryName] = c.ID
	}

	for _, m := range meals {
		categoryID := categoryIDs[m.Category]
		meal := models.Meal{
			Name:        m.Name,
			Description: m.Description,
			Price:       m.Price,
			MealTime:    m.MealTime,
			CategoryID:  &categoryID,
		}
		if err := db.Where("name = ?", m.Name).FirstOrCreate(&meal).Error; err != nil {
			log.Fatalf("failed to seed meal %q: %v", m.Name, err)
		}
	}

	for i := range tables {
		tbl := tables[i]
		tbl.Status = models.TableStatusAvailable
		if err := db.Where("table_number = ?", tbl.TableNumber).FirstOrCreate(&tbl).Error; err != nil {
			log.Fatalf("failed to seed table %d: %v", tbl.TableNumber, err)
		}
	}

	fmt.Printf("Seeded %d categories, %d meals and %d tables.\n",
		len(categories), len(meals), len(tables))
}
