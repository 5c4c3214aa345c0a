package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jawhara/restaurant-backend/internal/models"
)

// CustomerService handles customer operations
type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// ListCustomers returns all customers, newest first.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Order("customer_id DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer creates a customer
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return s.db.WithContext(ctx).Create(customer).Error
}

// UpdateProfileInput carries the optional profile fields; nil means keep
// the stored value.
type UpdateProfileInput struct {
	FirstName       *string
	Phone           *string
	Address         *string
	HealthCondition *string
	ProfileImageURL *string
}

// UpdateProfile applies a partial profile update.
func (s *CustomerService) UpdateProfile(ctx context.Context, id uint, in UpdateProfileInput) (*models.Customer, error) {
	updates := map[string]interface{}{}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.HealthCondition != nil {
		updates["health_condition"] = *in.HealthCondition
	}
	if in.ProfileImageURL != nil {
		updates["profile_image_url"] = *in.ProfileImageURL
	}
	if len(updates) == 0 {
		return s.GetCustomer(ctx, id)
	}

	res := s.db.WithContext(ctx).Model(&models.Customer{}).Where("customer_id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetCustomer(ctx, id)
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Customer{}, "customer_id = ?", id).Error
}

// CustomerOrder is one line of a customer's order history.
type CustomerOrder struct {
	Meal      string   `json:"meal"`
	Price     *float64 `json:"price"`
	Quantity  int      `json:"quantity"`
	OrderDate string   `json:"order_date"`
	OrderTime string   `json:"order_time"`
}

// CustomerWithOrders is a customer row with its order history embedded.
type CustomerWithOrders struct {
	models.Customer
	Orders []CustomerOrder `json:"orders"`
}

// CustomersWithOrders returns every customer with their order history,
// newest customers and newest orders first.
func (s *CustomerService) CustomersWithOrders(ctx context.Context) ([]CustomerWithOrders, error) {
	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]CustomerWithOrders, 0, len(customers))
	for _, customer := range customers {
		type orderRow struct {
			Meal          string
			Price         *float64
			Quantity      int
			OrderDatetime time.Time
		}
		var rows []orderRow
		err := s.db.WithContext(ctx).
			Table("orders").
			Select("meals.name AS meal, orders.price, orders.quantity, orders.order_datetime").
			Joins("LEFT JOIN meals ON orders.meal_id = meals.meal_id").
			Where("orders.customer_id = ?", customer.ID).
			Order("orders.order_datetime DESC").
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}

		orders := make([]CustomerOrder, 0, len(rows))
		for _, r := range rows {
			orders = append(orders, CustomerOrder{
				Meal:      r.Meal,
				Price:     r.Price,
				Quantity:  r.Quantity,
				OrderDate: r.OrderDatetime.Format("2006-01-02"),
				OrderTime: r.OrderDatetime.Format("15:04"),
			})
		}
		result = append(result, CustomerWithOrders{Customer: customer, Orders: orders})
	}

	return result, nil
}
