package routes

import (
	"github.com/gin-gonic/gin"
	accountControllers "github.com/mariafernandahr/pharmacy-api/controllers/account"
	"gorm.io/gorm"
)

func SetupAccountRoutes(r *gin.Engine, db *gorm.DB) {
	accounts := r.Group("/clientsaccounts")
	{
		accounts.GET("/all", accountControllers.GetAllAccounts(db))
		accounts.GET("/:id", accountControllers.GetAccountByID(db))
		accounts.POST("", accountControllers.CreateAccount(db))
		accounts.DELETE("/:id", accountControllers.DeleteAccount(db))

		// Partial credentials update
		accounts.PATCH("/:id", accountControllers.UpdateAccount(db))
		accounts.PUT("/:id", accountControllers.UpdateAccount(db))
	}
}
