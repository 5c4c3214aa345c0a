package models

import (
	"time"
)

const (
	TableStatusAvailable = "Available"
	TableStatusReserved  = "Reserved"
)

type Table struct {
	ID          uint   `gorm:"column:table_id;primaryKey" json:"table_id"`
	TableNumber int    `gorm:"uniqueIndex;not null" json:"table_number"`
	Capacity    int    `gorm:"not null" json:"capacity"`
	Status      string `gorm:"size:20;not null;default:'Available'" json:"status"`
}

func (Table) TableName() string { return "tables" }

type Reservation struct {
	ID                  uint      `gorm:"column:reservation_id;primaryKey" json:"reservation_id"`
	CustomerID          uint      `gorm:"not null;index" json:"customer_id"`
	TableID             uint      `gorm:"not null;index" json:"table_id"`
	ReservationDatetime time.Time `gorm:"column:reservation_datetime;not null" json:"reservation_datetime"`
	Notes               string    `gorm:"type:text" json:"notes"`
	CreatedAt           time.Time `json:"created_at"`
}

func (Reservation) TableName() string { return "reservations" }
