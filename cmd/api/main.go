package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jawhara/restaurant-backend/config"
	"github.com/jawhara/restaurant-backend/internal/api"
	"github.com/jawhara/restaurant-backend/internal/database"
	"github.com/jawhara/restaurant-backend/internal/middleware"
	"github.com/jawhara/restaurant-backend/internal/recommend"
	"github.com/jawhara/restaurant-backend/internal/server"
	"github.com/jawhara/restaurant-backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		if err := database.RunMigrations(db, dir); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	rules := recommend.DefaultRules()
	if cfg.HealthRulesPath != "" {
		rules, err = recommend.LoadRules(cfg.HealthRulesPath)
		if err != nil {
			logger.Fatal("failed to load health rules",
				zap.String("path", cfg.HealthRulesPath), zap.Error(err))
		}
		logger.Info("loaded health rules", zap.String("path", cfg.HealthRulesPath))
	}

	// Redis is optional; without it recommendations are recomputed per
	// request and no rate limit applies.
	var limiter *middleware.RateLimiter
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, caching and rate limiting disabled", zap.Error(err))
		redisClient = nil
	} else {
		limiter = middleware.NewRecommendationRateLimiter(redisClient)
	}

	// S3 is optional too; without it image uploads return 503.
	var images api.ImageUploader
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	s3cfg, err := config.NewS3Config(ctx, cfg)
	cancel()
	if err != nil {
		logger.Warn("object storage unavailable, image uploads disabled", zap.Error(err))
	} else {
		images = service.NewImageService(s3cfg, logger)
	}

	auth := service.NewAuthService(db, cfg.JWTSecret)
	recs := service.NewRecommendationService(db, rules, redisClient, cfg.RecommendTopN, logger)

	srv := server.NewServer(db, server.Services{
		Auth:         auth,
		Meals:        service.NewMealService(db),
		Customers:    service.NewCustomerService(db),
		Orders:       service.NewOrderService(db),
		Tables:       service.NewTableService(db),
		Reservations: service.NewReservationService(db),
		Recommend:    recs,
		Images:       images,
		Limiter:      limiter,
	}, logger)

	if err := srv.Start(cfg.ServerPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	return logger
}
