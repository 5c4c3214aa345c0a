package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jawhara/restaurant-backend/internal/models"
	"github.com/jawhara/restaurant-backend/internal/recommend"
)

var ErrCustomerNotFound = errors.New("customer not found")

const recommendCacheTTL = 5 * time.Minute

// RecommendationService loads a per-request snapshot of customers, meals
// and orders, derives the scoring profiles and ranks meals with the rule
// engine. A redis client may be supplied to cache results per customer;
// order and meal writes invalidate the cache.
type RecommendationService struct {
	db     *gorm.DB
	rules  recommend.RuleSet
	cache  *redis.Client
	topN   int
	logger *zap.Logger
}

// NewRecommendationService creates a RecommendationService. cache may be
// nil, in which case every request recomputes from scratch.
func NewRecommendationService(db *gorm.DB, rules recommend.RuleSet, cache *redis.Client, topN int, logger *zap.Logger) *RecommendationService {
	if topN <= 0 {
		topN = recommend.DefaultTopN
	}
	return &RecommendationService{
		db:     db,
		rules:  rules,
		cache:  cache,
		topN:   topN,
		logger: logger,
	}
}

// RecommendedMeal is one entry of the recommendation response.
type RecommendedMeal struct {
	MealID      uint    `json:"meal_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	MealTime    string  `json:"meal_time"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Score       float64 `json:"score"`
}

// Recommend scores every meal for the customer and returns the topN by
// descending score. topN <= 0 uses the configured default.
func (s *RecommendationService) Recommend(ctx context.Context, customerID uint, topN int) ([]RecommendedMeal, error) {
	if topN <= 0 {
		topN = s.topN
	}

	if cached, ok := s.cacheGet(ctx, customerID, topN); ok {
		return cached, nil
	}

	customers, meals, orders := s.loadSnapshot(ctx)

	profiles := buildProfiles(customers, meals, orders)
	profile, ok := profiles[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}

	ranked := recommend.Rank(profile, mealRecords(meals), s.rules, topN)

	result := make([]RecommendedMeal, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, RecommendedMeal{
			MealID:      r.Meal.ID,
			Name:        r.Meal.Name,
			Price:       r.Meal.Price,
			MealTime:    r.Meal.MealTime,
			Description: r.Meal.Description,
			ImageURL:    r.Meal.ImageURL,
			Score:       r.Score,
		})
	}

	s.cacheSet(ctx, customerID, topN, result)
	return result, nil
}

// InvalidateCustomer drops cached recommendations for one customer. Called
// after order writes.
func (s *RecommendationService) InvalidateCustomer(ctx context.Context, customerID uint) {
	s.invalidate(ctx, fmt.Sprintf("recommend:%d:*", customerID))
}

// InvalidateAll drops every cached recommendation. Called after meal
// writes, which change the candidate set for everyone.
func (s *RecommendationService) InvalidateAll(ctx context.Context) {
	s.invalidate(ctx, "recommend:*")
}

// loadSnapshot reads the full customer, meal and order sets. A store
// failure degrades to empty collections so the caller answers "not found"
// instead of crashing.
func (s *RecommendationService) loadSnapshot(ctx context.Context) ([]models.Customer, []models.Meal, []models.Order) {
	var customers []models.Customer
	var meals []models.Meal
	var orders []models.Order

	if err := s.db.WithContext(ctx).Find(&customers).Error; err != nil {
		s.logger.Warn("failed to load customers for scoring", zap.Error(err))
		return nil, nil, nil
	}
	if err := s.db.WithContext(ctx).Find(&meals).Error; err != nil {
		s.logger.Warn("failed to load meals for scoring", zap.Error(err))
		return nil, nil, nil
	}
	if err := s.db.WithContext(ctx).Order("order_id ASC").Find(&orders).Error; err != nil {
		s.logger.Warn("failed to load orders for scoring", zap.Error(err))
		return nil, nil, nil
	}

	return customers, meals, orders
}

// buildProfiles turns raw rows into scoring profiles: missing ages take the
// median of the known ages, missing health conditions become "None", and
// the favorite category is derived from order history.
func buildProfiles(customers []models.Customer, meals []models.Meal, orders []models.Order) map[uint]recommend.CustomerProfile {
	median := medianAge(customers)

	categoryByMeal := make(map[uint]string, len(meals))
	for _, m := range meals {
		if m.CategoryID != nil {
			categoryByMeal[m.ID] = strconv.FormatUint(uint64(*m.CategoryID), 10)
		}
	}

	ordersByCustomer := make(map[uint][]models.Order)
	for _, o := range orders {
		ordersByCustomer[o.CustomerID] = append(ordersByCustomer[o.CustomerID], o)
	}

	profiles := make(map[uint]recommend.CustomerProfile, len(customers))
	for _, c := range customers {
		age := median
		if c.Age != nil {
			age = *c.Age
		}
		condition := c.HealthCondition
		if condition == "" {
			condition = "None"
		}

		profiles[c.ID] = recommend.CustomerProfile{
			ID:               c.ID,
			Age:              age,
			HealthCondition:  condition,
			FavoriteCategory: favoriteCategory(ordersByCustomer[c.ID], categoryByMeal),
		}
	}
	return profiles
}

// medianAge returns the median over the known (non-null) ages, rounded to
// the nearest year for even counts. Zero when no customer has an age.
func medianAge(customers []models.Customer) int {
	var ages []int
	for _, c := range customers {
		if c.Age != nil {
			ages = append(ages, *c.Age)
		}
	}
	if len(ages) == 0 {
		return 0
	}
	sort.Ints(ages)

	mid := len(ages) / 2
	if len(ages)%2 == 1 {
		return ages[mid]
	}
	return int(math.Round(float64(ages[mid-1]+ages[mid]) / 2))
}

// favoriteCategory is the modal category among the customer's ordered
// meals. Ties go to the category encountered first in order history; no
// orders, or none resolving to a category, yields "Unknown".
func favoriteCategory(orders []models.Order, categoryByMeal map[uint]string) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, o := range orders {
		cat, ok := categoryByMeal[o.MealID]
		if !ok {
			continue
		}
		counts[cat]++
		if _, seen := firstSeen[cat]; !seen {
			firstSeen[cat] = i
		}
	}
	if len(counts) == 0 {
		return "Unknown"
	}

	best := ""
	for cat, n := range counts {
		if best == "" ||
			n > counts[best] ||
			(n == counts[best] && firstSeen[cat] < firstSeen[best]) {
			best = cat
		}
	}
	return best
}

func mealRecords(meals []models.Meal) []recommend.MealRecord {
	records := make([]recommend.MealRecord, 0, len(meals))
	for _, m := range meals {
		category := ""
		if m.CategoryID != nil {
			category = strconv.FormatUint(uint64(*m.CategoryID), 10)
		}
		records = append(records, recommend.MealRecord{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Price:       m.Price,
			MealTime:    m.MealTime,
			Category:    category,
			ImageURL:    m.ImageURL,
		})
	}
	return records
}

func (s *RecommendationService) cacheGet(ctx context.Context, customerID uint, topN int) ([]RecommendedMeal, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, recommendCacheKey(customerID, topN)).Bytes()
	if err != nil {
		return nil, false
	}
	var result []RecommendedMeal
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	return result, true
}

func (s *RecommendationService) cacheSet(ctx context.Context, customerID uint, topN int, result []RecommendedMeal) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, recommendCacheKey(customerID, topN), data, recommendCacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache recommendations", zap.Error(err))
	}
}

func (s *RecommendationService) invalidate(ctx context.Context, pattern string) {
	if s.cache == nil {
		return
	}
	keys, err := s.cache.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("failed to invalidate recommendation cache", zap.Error(err))
	}
}

func recommendCacheKey(customerID uint, topN int) string {
	return fmt.Sprintf("recommend:%d:%d", customerID, topN)
}
