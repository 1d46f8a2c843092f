package app

import (
	"database/sql"
	"net/http"

	"go-hrms/internal/employee"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/salarymaster"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	salaryMasterRepo := salarymaster.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb, logger)
	salaryMasterService := salarymaster.NewServiceWithOutbox(db, salaryMasterRepo, outboxRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	salaryMasterHandler := salarymaster.NewHandler(salaryMasterService, logger)

	// --- Routes Registration ---
	router.GET("/healthz", healthHandler(db))

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		salarymaster.RegisterRoutes(api, salaryMasterHandler, rdb)
	}
}

func healthHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Database unavailable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
