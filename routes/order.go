package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/mariafernandahr/pharmacy-api/controllers/order"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Place a new order for {client_id, medicine_id}
		orders.POST("", orderControllers.PlaceOrder(db))

		orders.GET("/all", orderControllers.GetAllOrders(db))
		orders.GET("/:id", orderControllers.GetOrderByID(db))
		orders.DELETE("/:id", orderControllers.DeleteOrder(db))

		// Medicines linked to one order
		orders.GET("/:id/ordered_medicines", orderControllers.GetOrderedMedicines(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
