package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/controller"
	"github.com/hugohenrick/agro-dashboard/pkg/auth"
)

// RegisterStockRoutes registra as rotas dos módulos de entradas e saídas
// de estoque
func RegisterStockRoutes(r *gin.RouterGroup, receiptController *controller.ReceiptController, issueController *controller.IssueController) {
	goods := r.Group("/goods")
	goods.Use(auth.JWTAuthMiddleware())
	{
		goods.POST("", receiptController.Create)
		goods.GET("", receiptController.List)
		goods.GET("/export", receiptController.Export)
		goods.GET("/:id", receiptController.GetByID)
		goods.PUT("/:id", receiptController.Update)
		goods.DELETE("/:id", receiptController.Delete)
	}

	sales := r.Group("/sales")
	sales.Use(auth.JWTAuthMiddleware())
	{
		sales.POST("", issueController.Create)
		sales.GET("", issueController.List)
		sales.GET("/export", issueController.Export)
		sales.GET("/:id", issueController.GetByID)
		sales.PUT("/:id", issueController.Update)
		sales.DELETE("/:id", issueController.Delete)
	}
}
