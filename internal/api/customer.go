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

type CustomerHandler struct {
	customers *service.CustomerService
	auth      *service.AuthService
	images    ImageUploader
	logger    *zap.Logger
}

func NewCustomerHandler(customers *service.CustomerService, auth *service.AuthService, images ImageUploader, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		auth:      auth,
		images:    images,
		logger:    logger,
	}
}

func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	authRequired := middleware.AuthMiddleware(h.auth)

	customers := router.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("", authRequired, h.CreateCustomer)
		customers.DELETE("/:id", authRequired, h.DeleteCustomer)
	}

	router.GET("/customers-with-orders", h.CustomersWithOrders)
	router.GET("/profile", authRequired, h.GetProfile)
	router.POST("/profile", authRequired, h.UpdateProfile)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customers.ListCustomers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.customers.GetCustomer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		h.logger.Error("failed to fetch customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customer"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

type customerRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Age             *int   `json:"age"`
	HealthCondition string `json:"health_condition"`
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		Age:             req.Age,
		HealthCondition: req.HealthCondition,
	}
	if err := h.customers.CreateCustomer(c.Request.Context(), &customer); err != nil {
		h.logger.Error("failed to create customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.customers.DeleteCustomer(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}

func (h *CustomerHandler) CustomersWithOrders(c *gin.Context) {
	customers, err := h.customers.CustomersWithOrders(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list customers with orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *CustomerHandler) GetProfile(c *gin.Context) {
	id, ok := middleware.CustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	customer, err := h.customers.GetCustomer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		h.logger.Error("failed to fetch profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateProfile applies a partial update over the authenticated customer's
// profile. Fields arrive as multipart form values so a profile image can
// ride along; absent fields keep their stored values.
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	id, ok := middleware.CustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var in service.UpdateProfileInput
	if v, set := c.GetPostForm("first_name"); set {
		in.FirstName = &v
	}
	if v, set := c.GetPostForm("phone"); set {
		in.Phone = &v
	}
	if v, set := c.GetPostForm("address"); set {
		in.Address = &v
	}
	if v, set := c.GetPostForm("health_condition"); set {
		in.HealthCondition = &v
	}

	imageURL, ok := readFormImage(c, h.images, "profiles")
	if !ok {
		return
	}
	if imageURL != "" {
		in.ProfileImageURL = &imageURL
	}

	customer, err := h.customers.UpdateProfile(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		h.logger.Error("failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, customer)
}
