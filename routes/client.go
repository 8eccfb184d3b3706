package routes

import (
	"github.com/gin-gonic/gin"
	clientControllers "github.com/mariafernandahr/pharmacy-api/controllers/client"
	"gorm.io/gorm"
)

func SetupClientRoutes(r *gin.Engine, db *gorm.DB) {
	clients := r.Group("/clients")
	{
		clients.GET("/all", clientControllers.GetAllClients(db))
		clients.GET("/:id", clientControllers.GetClientByID(db))
		clients.POST("", clientControllers.CreateClient(db))
		clients.DELETE("/:id", clientControllers.DeleteClient(db))

		// Orders placed by one client
		clients.GET("/:id/orders", clientControllers.GetClientOrders(db))
	}
}
