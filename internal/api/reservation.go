package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jawhara/restaurant-backend/internal/middleware"
	"github.com/jawhara/restaurant-backend/internal/models"
	"github.com/jawhara/restaurant-backend/internal/service"
)

type ReservationHandler struct {
	reservations *service.ReservationService
	auth         *service.AuthService
	logger       *zap.Logger
}

func NewReservationHandler(reservations *service.ReservationService, auth *service.AuthService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		auth:         auth,
		logger:       logger,
	}
}

func (h *ReservationHandler) RegisterRoutes(router *gin.RouterGroup) {
	authRequired := middleware.AuthMiddleware(h.auth)

	reservations := router.Group("/reservations")
	{
		reservations.GET("", h.ListReservations)
		reservations.POST("", authRequired, h.CreateReservation)
	}
}

type createReservationRequest struct {
	CustomerID          uint      `json:"customer_id" binding:"required"`
	TableID             uint      `json:"table_id" binding:"required"`
	ReservationDatetime time.Time `json:"reservation_datetime" binding:"required"`
	Notes               string    `json:"notes"`
}

func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.reservations.ListReservations(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list reservations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation := models.Reservation{
		CustomerID:          req.CustomerID,
		TableID:             req.TableID,
		ReservationDatetime: req.ReservationDatetime,
		Notes:               req.Notes,
	}
	if err := h.reservations.CreateReservation(c.Request.Context(), &reservation); err != nil {
		h.logger.Error("failed to create reservation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reservation"})
		return
	}
	c.JSON(http.StatusCreated, reservation)
}
