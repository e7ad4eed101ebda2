package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/controller"
	"github.com/hugohenrick/agro-dashboard/internal/domain/user"
	"github.com/hugohenrick/agro-dashboard/pkg/auth"
)

// RegisterUserRoutes registra as rotas do módulo de usuários. A gestão de
// usuários é restrita a administradores.
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController) {
	users := r.Group("/users")
	users.Use(auth.JWTAuthMiddleware())
	users.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin)))
	{
		users.POST("", userController.Create)
		users.GET("", userController.List)
		users.GET("/:id", userController.GetByID)
		users.PUT("/:id", userController.Update)
		users.DELETE("/:id", userController.Delete)
	}
}
