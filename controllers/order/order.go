package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariafernandahr/pharmacy-api/store"
	"github.com/mariafernandahr/pharmacy-api/web"
	"gorm.io/gorm"
)

func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.ListOrders(db)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		order, err := store.GetOrder(db, id)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PlaceOrder creates an order for {client_id, medicine_id} and, on
// success, pushes it to the live order feed.
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in store.PlaceOrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := store.PlaceOrder(db, in)
		if err != nil {
			web.Error(c, err)
			return
		}
		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		web.Deleted(c, store.DeleteOrder(db, id))
	}
}

// GetOrderedMedicines lists the medicines linked to one order.
func GetOrderedMedicines(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		medicines, err := store.OrderedMedicines(db, id)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, medicines)
	}
}
