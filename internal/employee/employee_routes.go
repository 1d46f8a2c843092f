package employee

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/check/:code", handler.CheckCode)
		employees.GET("/code/:code", handler.GetByCode)
		employees.GET("/:id", handler.GetByID)

		employees.POST("",
			middleware.RateLimitByIP(2, 5),
			handler.Create,
		)

		employees.PUT("/code/:code",
			middleware.RateLimitByIP(2, 5),
			handler.UpdateByCode,
		)
		employees.PUT("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Update,
		)

		employees.DELETE("/code/:code",
			middleware.RateLimitByIP(1, 2),
			handler.DeleteByCode,
		)
		employees.DELETE("/:id",
			middleware.RateLimitByIP(1, 2),
			handler.Delete,
		)
	}
}
