package salarymaster

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts /salary-master. rdb may be nil, in which case
// Idempotency-Key headers are ignored.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	salaries := r.Group("/salary-master")
	{
		salaries.GET("", handler.GetAll)
		salaries.GET("/employee/:code", handler.GetByEmployeeCode)
		salaries.GET("/:id", handler.GetByID)
		salaries.GET("/:id/payslip",
			middleware.RateLimitByIP(1, 3),
			handler.Payslip,
		)

		salaries.POST("",
			middleware.RateLimitByIP(2, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		salaries.PUT("/employee/:code",
			middleware.RateLimitByIP(2, 5),
			handler.UpdateByEmployeeCode,
		)
		salaries.PUT("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Update,
		)

		salaries.DELETE("/employee/:code",
			middleware.RateLimitByIP(1, 2),
			handler.DeleteByEmployeeCode,
		)
		salaries.DELETE("/:id",
			middleware.RateLimitByIP(1, 2),
			handler.Delete,
		)
	}
}
