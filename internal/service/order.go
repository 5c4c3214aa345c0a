package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jawhara/restaurant-backend/internal/models"
)

var ErrNoUpdatableFields = errors.New("no updatable fields provided")

// OrderService handles order operations
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// OrderView is an order joined with customer and meal names, plus the
// computed line total.
type OrderView struct {
	OrderID       uint      `json:"order_id"`
	CustomerID    uint      `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	MealID        uint      `json:"meal_id"`
	MealName      string    `json:"meal_name"`
	Quantity      int       `json:"quantity"`
	Price         *float64  `json:"price"`
	Total         *float64  `json:"total"`
	Status        string    `json:"status"`
	OrderDatetime time.Time `json:"order_datetime"`
}

// ListOrders returns all orders joined with customer and meal names,
// newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]OrderView, error) {
	type row struct {
		OrderID           uint
		CustomerID        uint
		CustomerFirstName string
		CustomerLastName  string
		MealID            uint
		MealName          string
		Quantity          int
		Price             *float64
		Status            string
		OrderDatetime     time.Time
	}

	var rows []row
	err := s.db.WithContext(ctx).
		Table("orders").
		Select(`orders.order_id, orders.customer_id,
			customers.first_name AS customer_first_name,
			customers.last_name AS customer_last_name,
			orders.meal_id, meals.name AS meal_name,
			orders.quantity, orders.price, orders.status, orders.order_datetime`).
		Joins("LEFT JOIN customers ON orders.customer_id = customers.customer_id").
		Joins("LEFT JOIN meals ON orders.meal_id = meals.meal_id").
		Order("orders.order_datetime DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		v := OrderView{
			OrderID:       r.OrderID,
			CustomerID:    r.CustomerID,
			CustomerName:  joinName(r.CustomerFirstName, r.CustomerLastName),
			MealID:        r.MealID,
			MealName:      r.MealName,
			Quantity:      r.Quantity,
			Price:         r.Price,
			Status:        r.Status,
			OrderDatetime: r.OrderDatetime,
		}
		if r.Price != nil {
			total := *r.Price * float64(r.Quantity)
			v.Total = &total
		}
		orders = append(orders, v)
	}
	return orders, nil
}

// CreateOrder creates an order
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.Quantity <= 0 {
		order.Quantity = 1
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	return s.db.WithContext(ctx).Create(order).Error
}

// UpdateOrder applies a partial update over the updatable order fields.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, updates map[string]interface{}) (*models.Order, error) {
	allowed := map[string]bool{
		"customer_id": true,
		"meal_id":     true,
		"quantity":    true,
		"price":       true,
		"status":      true,
	}
	filtered := map[string]interface{}{}
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, ErrNoUpdatableFields
	}

	res := s.db.WithContext(ctx).Model(&models.Order{}).Where("order_id = ?", id).Updates(filtered)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, "order_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder deletes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Order{}, "order_id = ?", id).Error
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
