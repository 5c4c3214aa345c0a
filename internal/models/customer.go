package models

import (
	"time"
)

type Customer struct {
	ID              uint      `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	FirstName       string    `gorm:"size:100;not null" json:"first_name"`
	LastName        string    `gorm:"size:100" json:"last_name"`
	Email           string    `gorm:"size:255;uniqueIndex" json:"email"`
	Phone           string    `gorm:"size:30" json:"phone"`
	Address         string    `gorm:"size:255" json:"address"`
	Username        string    `gorm:"size:50" json:"username"`
	PasswordHash    string    `gorm:"size:255" json:"-"`
	Age             *int      `json:"age"`
	HealthCondition string    `gorm:"size:50" json:"health_condition"`
	ProfileImageURL string    `gorm:"size:255" json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
