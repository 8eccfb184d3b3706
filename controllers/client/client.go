package clientControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariafernandahr/pharmacy-api/store"
	"github.com/mariafernandahr/pharmacy-api/web"
	"gorm.io/gorm"
)

func GetAllClients(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clients, err := store.ListClients(db)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, clients)
	}
}

func GetClientByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		client, err := store.GetClient(db, id)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

func CreateClient(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in store.ClientInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		client, err := store.CreateClient(db, in)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, client)
	}
}

func DeleteClient(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		web.Deleted(c, store.DeleteClient(db, id))
	}
}

// GetClientOrders lists the orders placed by one client.
func GetClientOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		orders, err := store.ClientOrders(db, id)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
