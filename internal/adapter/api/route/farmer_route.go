package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/controller"
	"github.com/hugohenrick/agro-dashboard/pkg/auth"
)

// RegisterFarmerRoutes registra as rotas do módulo de produtores
func RegisterFarmerRoutes(r *gin.RouterGroup, farmerController *controller.FarmerController) {
	farmers := r.Group("/farmers")
	farmers.Use(auth.JWTAuthMiddleware())
	{
		farmers.POST("", farmerController.Create)
		farmers.GET("", farmerController.List)
		farmers.GET("/options", farmerController.Options)
		farmers.GET("/:id", farmerController.GetByID)
		farmers.PUT("/:id", farmerController.Update)
		farmers.DELETE("/:id", farmerController.Delete)
	}
}
