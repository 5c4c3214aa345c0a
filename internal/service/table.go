package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jawhara/restaurant-backend/internal/models"
)

var ErrInvalidTableStatus = errors.New("invalid table status")

// TableService handles dining table operations
type TableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

// ListTables returns all tables ordered by id.
func (s *TableService) ListTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.WithContext(ctx).Order("table_id ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// CreateTable creates a table with status Available.
func (s *TableService) CreateTable(ctx context.Context, table *models.Table) error {
	table.Status = models.TableStatusAvailable
	return s.db.WithContext(ctx).Create(table).Error
}

// UpdateStatus flips a table between Available and Reserved.
func (s *TableService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if status != models.TableStatusAvailable && status != models.TableStatusReserved {
		return ErrInvalidTableStatus
	}

	res := s.db.WithContext(ctx).Model(&models.Table{}).Where("table_id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AvailableTables returns tables with status Available, ordered by number.
func (s *TableService) AvailableTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	err := s.db.WithContext(ctx).
		Where("status = ?", models.TableStatusAvailable).
		Order("table_number ASC").
		Find(&tables).Error
	if err != nil {
		return nil, err
	}
	return tables, nil
}
