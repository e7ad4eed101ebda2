package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/controller"
	"github.com/hugohenrick/agro-dashboard/pkg/auth"
)

// RegisterDashboardRoutes registra as rotas das agregações do painel
func RegisterDashboardRoutes(r *gin.RouterGroup, dashboardController *controller.DashboardController) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(auth.JWTAuthMiddleware())
	{
		dashboard.GET("/cards", dashboardController.Cards)
		dashboard.GET("/seasons/:id/overview", dashboardController.SeasonOverview)
		dashboard.GET("/stock-in", dashboardController.StockIn)
		dashboard.GET("/revenue", dashboardController.Revenue)
	}
}
