package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/controller"
	"github.com/hugohenrick/agro-dashboard/internal/domain/user"
	"github.com/hugohenrick/agro-dashboard/pkg/auth"
)

// RegisterInvoiceRoutes registra as rotas do módulo de faturas. Faturas
// são restritas a administradores e contadores.
func RegisterInvoiceRoutes(r *gin.RouterGroup, invoiceController *controller.InvoiceController) {
	invoices := r.Group("/invoices")
	invoices.Use(auth.JWTAuthMiddleware())
	invoices.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleAccountant)))
	{
		invoices.POST("", invoiceController.Create)
		invoices.GET("", invoiceController.List)
		invoices.GET("/export", invoiceController.Export)
		invoices.GET("/latest", invoiceController.Latest)
		invoices.GET("/:id", invoiceController.GetByID)
		invoices.PUT("/:id", invoiceController.Update)
		invoices.DELETE("/:id", invoiceController.Delete)
	}
}
