package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registra las rutas de la API JSON sobre el router
func RegisterRoutes(r *gin.Engine, userHandler *UserHandler, itemHandler *ItemHandler) {
	users := r.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.POST("/:id/deactivate", userHandler.DeactivateUser)
		users.POST("/:id/items", userHandler.CreateItemForUser)
	}

	items := r.Group("/items")
	{
		items.GET("", itemHandler.ListItems)
		items.GET("/:id", itemHandler.GetItem)
		items.PUT("/:id", itemHandler.UpdateItem)
		items.DELETE("/:id", itemHandler.DeleteItem)
	}
}
