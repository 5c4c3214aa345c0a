package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jawhara/restaurant-backend/internal/api"
	"github.com/jawhara/restaurant-backend/internal/database"
	"github.com/jawhara/restaurant-backend/internal/middleware"
	"github.com/jawhara/restaurant-backend/internal/service"
)

// Services bundles everything the HTTP layer depends on. Images and
// Limiter are optional; a nil value disables uploads or rate limiting.
type Services struct {
	Auth         *service.AuthService
	Meals        *service.MealService
	Customers    *service.CustomerService
	Orders       *service.OrderService
	Tables       *service.TableService
	Reservations *service.ReservationService
	Recommend    *service.RecommendationService
	Images       api.ImageUploader
	Limiter      *middleware.RateLimiter
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	db     *gorm.DB
	logger *zap.Logger
}

// NewServer creates a new server instance
func NewServer(db *gorm.DB, svcs Services, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(svcs.Auth, logger).RegisterRoutes(v1)
	api.NewMealHandler(svcs.Meals, svcs.Auth, svcs.Images, svcs.Recommend, logger).RegisterRoutes(v1)
	api.NewCustomerHandler(svcs.Customers, svcs.Auth, svcs.Images, logger).RegisterRoutes(v1)
	api.NewOrderHandler(svcs.Orders, svcs.Auth, svcs.Recommend, logger).RegisterRoutes(v1)
	api.NewTableHandler(svcs.Tables, svcs.Auth, logger).RegisterRoutes(v1)
	api.NewReservationHandler(svcs.Reservations, svcs.Auth, logger).RegisterRoutes(v1)
	api.NewRecommendHandler(svcs.Recommend, svcs.Limiter, logger).RegisterRoutes(v1)

	return &Server{
		router: router,
		db:     db,
		logger: logger,
	}
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server until SIGINT or SIGTERM, then shuts down
// gracefully.
func (s *Server) Start(port string) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("failed to start server", zap.Error(err))
		}
	}()
	s.logger.Info("server listening", zap.String("port", port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
