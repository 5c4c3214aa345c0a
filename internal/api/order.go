package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jawhara/restaurant-backend/internal/middleware"
	"github.com/jawhara/restaurant-backend/internal/models"
	"github.com/jawhara/restaurant-backend/internal/service"
)

// OrderHandler serves order endpoints. Order writes invalidate the
// customer's cached recommendations since order history feeds the
// favorite category signal.
type OrderHandler struct {
	orders *service.OrderService
	auth   *service.AuthService
	recs   *service.RecommendationService
	logger *zap.Logger
}

func NewOrderHandler(orders *service.OrderService, auth *service.AuthService, recs *service.RecommendationService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		auth:   auth,
		recs:   recs,
		logger: logger,
	}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	authRequired := middleware.AuthMiddleware(h.auth)

	orders := router.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", authRequired, h.CreateOrder)
		orders.PUT("/:id", authRequired, h.UpdateOrder)
		orders.DELETE("/:id", authRequired, h.DeleteOrder)
	}
}

type createOrderRequest struct {
	CustomerID uint     `json:"customer_id" binding:"required"`
	MealID     uint     `json:"meal_id" binding:"required"`
	Quantity   int      `json:"quantity"`
	Price      *float64 `json:"price"`
	Status     string   `json:"status"`
}

type updateOrderRequest struct {
	CustomerID *uint    `json:"customer_id"`
	MealID     *uint    `json:"meal_id"`
	Quantity   *int     `json:"quantity"`
	Price      *float64 `json:"price"`
	Status     *string  `json:"status"`
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := models.Order{
		CustomerID: req.CustomerID,
		MealID:     req.MealID,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Status:     req.Status,
	}
	if err := h.orders.CreateOrder(c.Request.Context(), &order); err != nil {
		h.logger.Error("failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}

	if h.recs != nil {
		h.recs.InvalidateCustomer(c.Request.Context(), order.CustomerID)
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.CustomerID != nil {
		updates["customer_id"] = *req.CustomerID
	}
	if req.MealID != nil {
		updates["meal_id"] = *req.MealID
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	order, err := h.orders.UpdateOrder(c.Request.Context(), id, updates)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, service.ErrNoUpdatableFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updatable fields provided"})
		default:
			h.logger.Error("failed to update order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
		}
		return
	}

	if h.recs != nil {
		h.recs.InvalidateCustomer(c.Request.Context(), order.CustomerID)
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
		return
	}

	// The deleted row's owner is gone at this point, so drop everything.
	if h.recs != nil {
		h.recs.InvalidateAll(c.Request.Context())
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
