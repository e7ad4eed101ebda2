package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/controller"
	"github.com/hugohenrick/agro-dashboard/pkg/auth"
)

// RegisterLeaderRoutes registra as rotas do módulo de líderes de equipe
func RegisterLeaderRoutes(r *gin.RouterGroup, leaderController *controller.LeaderController) {
	leaders := r.Group("/team-leaders")
	leaders.Use(auth.JWTAuthMiddleware())
	{
		leaders.POST("", leaderController.Create)
		leaders.GET("", leaderController.List)
		leaders.GET("/options", leaderController.Options)
		leaders.GET("/:id", leaderController.GetByID)
		leaders.PUT("/:id", leaderController.Update)
		leaders.DELETE("/:id", leaderController.Delete)
	}
}
