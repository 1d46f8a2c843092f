package app

import (
	"database/sql"
	"fmt"

	"go-hrms/internal/config"
	"go-hrms/internal/employee"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/salarymaster"
	"go-hrms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// BuildApp connects the stores, migrates the schema and mounts every module on
// router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, sqlDB, err := connectDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if err := migrate(gormDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, summary cache and idempotency keys disabled")
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst),
	)
	registerModules(router, sqlDB, gormDB, rdb)

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}
	return cleanup, nil
}

func connectDatabase(cfg config.DatabaseConfig) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.Port,
		cfg.SSLMode,
		cfg.MaxRetries,
	)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&salarymaster.SalaryMaster{},
		&kafka.OutboxEventModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
