package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/jawhara/restaurant-backend/internal/models"
)

// ReservationService handles reservation operations
type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// CreateReservation inserts the reservation and marks its table Reserved in
// a single transaction.
func (s *ReservationService) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reservation).Error; err != nil {
			return err
		}
		return tx.Model(&models.Table{}).
			Where("table_id = ?", reservation.TableID).
			Update("status", models.TableStatusReserved).Error
	})
}

// ListReservations returns all reservations, newest first.
func (s *ReservationService) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Order("reservation_datetime DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}
