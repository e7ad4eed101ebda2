package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/controller"
	"github.com/hugohenrick/agro-dashboard/pkg/auth"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	products.Use(auth.JWTAuthMiddleware())
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/options", productController.Options)
		products.GET("/:id", productController.GetByID)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
	}
}
