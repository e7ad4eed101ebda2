package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/controller"
	"github.com/hugohenrick/agro-dashboard/pkg/auth"
)

// RegisterCustomerRoutes registra as rotas do módulo de clientes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := r.Group("/customers")
	customers.Use(auth.JWTAuthMiddleware())
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/options", customerController.Options)
		customers.GET("/:id", customerController.GetByID)
		customers.PUT("/:id", customerController.Update)
		customers.DELETE("/:id", customerController.Delete)
	}
}
