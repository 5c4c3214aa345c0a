package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jawhara/restaurant-backend/internal/middleware"
	"github.com/jawhara/restaurant-backend/internal/service"
)

// RecommendHandler serves the meal recommendation endpoint. An optional
// rate limiter caps the per-caller request rate; scoring walks the whole
// meal set on every cache miss.
type RecommendHandler struct {
	recs    *service.RecommendationService
	limiter *middleware.RateLimiter
	logger  *zap.Logger
}

func NewRecommendHandler(recs *service.RecommendationService, limiter *middleware.RateLimiter, logger *zap.Logger) *RecommendHandler {
	return &RecommendHandler{
		recs:    recs,
		limiter: limiter,
		logger:  logger,
	}
}

func (h *RecommendHandler) RegisterRoutes(router *gin.RouterGroup) {
	ai := router.Group("/ai")
	if h.limiter != nil {
		ai.Use(h.limiter.RateLimitMiddleware())
	}
	ai.GET("/recommend/:customer_id", h.Recommend)
}

func (h *RecommendHandler) Recommend(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		return
	}

	topN := 0
	if raw := c.Query("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid top_n"})
			return
		}
		topN = n
	}

	recommendations, err := h.recs.Recommend(c.Request.Context(), customerID, topN)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		h.logger.Error("failed to compute recommendations",
			zap.Uint("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_id":     customerID,
		"recommendations": recommendations,
	})
}
