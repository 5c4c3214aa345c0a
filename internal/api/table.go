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

type TableHandler struct {
	tables *service.TableService
	auth   *service.AuthService
	logger *zap.Logger
}

func NewTableHandler(tables *service.TableService, auth *service.AuthService, logger *zap.Logger) *TableHandler {
	return &TableHandler{tables: tables, auth: auth, logger: logger}
}

func (h *TableHandler) RegisterRoutes(router *gin.RouterGroup) {
	authRequired := middleware.AuthMiddleware(h.auth)

	tables := router.Group("/tables")
	{
		tables.GET("", h.ListTables)
		tables.POST("", authRequired, h.CreateTable)
		tables.PUT("/:id/status", authRequired, h.UpdateStatus)
	}

	router.GET("/available-tables", h.AvailableTables)
}

type createTableRequest struct {
	TableNumber int `json:"table_number" binding:"required"`
	Capacity    int `json:"capacity" binding:"required"`
}

type tableStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *TableHandler) ListTables(c *gin.Context) {
	tables, err := h.tables.ListTables(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list tables", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

func (h *TableHandler) CreateTable(c *gin.Context) {
	var req createTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table := models.Table{TableNumber: req.TableNumber, Capacity: req.Capacity}
	if err := h.tables.CreateTable(c.Request.Context(), &table); err != nil {
		h.logger.Error("failed to create table", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create table"})
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (h *TableHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req tableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.tables.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTableStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be Available or Reserved"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
		default:
			h.logger.Error("failed to update table status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update table"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "table status updated"})
}

func (h *TableHandler) AvailableTables(c *gin.Context) {
	tables, err := h.tables.AvailableTables(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list available tables", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}
