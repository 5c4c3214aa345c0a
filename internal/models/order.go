package models

import (
	"time"
)

const OrderStatusPending = "pending"

type Order struct {
	ID            uint      `gorm:"column:order_id;primaryKey" json:"order_id"`
	CustomerID    uint      `gorm:"not null;index" json:"customer_id"`
	MealID        uint      `gorm:"not null;index" json:"meal_id"`
	Quantity      int       `gorm:"not null;default:1" json:"quantity"`
	Price         *float64  `json:"price"`
	Status        string    `gorm:"size:30;not null;default:'pending'" json:"status"`
	OrderDatetime time.Time `gorm:"column:order_datetime;autoCreateTime" json:"order_datetime"`
}

func (Order) TableName() string { return "orders" }
