package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/controller"
	"github.com/hugohenrick/agro-dashboard/pkg/auth"
)

// RegisterSeasonRoutes registra as rotas do módulo de safras
func RegisterSeasonRoutes(r *gin.RouterGroup, seasonController *controller.SeasonController) {
	seasons := r.Group("/seasons")
	seasons.Use(auth.JWTAuthMiddleware())
	{
		seasons.POST("", seasonController.Create)
		seasons.GET("", seasonController.List)
		seasons.GET("/:id", seasonController.GetByID)
		seasons.PUT("/:id", seasonController.Update)
		seasons.DELETE("/:id", seasonController.Delete)
	}
}
