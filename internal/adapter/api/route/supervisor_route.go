package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/controller"
	"github.com/hugohenrick/agro-dashboard/pkg/auth"
)

// RegisterSupervisorRoutes registra as rotas do módulo de supervisores
func RegisterSupervisorRoutes(r *gin.RouterGroup, supervisorController *controller.SupervisorController) {
	supervisors := r.Group("/supervisors")
	supervisors.Use(auth.JWTAuthMiddleware())
	{
		supervisors.POST("", supervisorController.Create)
		supervisors.GET("", supervisorController.List)
		supervisors.GET("/options", supervisorController.Options)
		supervisors.GET("/:id", supervisorController.GetByID)
		supervisors.PUT("/:id", supervisorController.Update)
		supervisors.DELETE("/:id", supervisorController.Delete)
	}
}
