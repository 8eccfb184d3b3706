package accountControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariafernandahr/pharmacy-api/store"
	"github.com/mariafernandahr/pharmacy-api/web"
	"gorm.io/gorm"
)

func GetAllAccounts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		accounts, err := store.ListAccounts(db)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, accounts)
	}
}

func GetAccountByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		account, err := store.GetAccount(db, id)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

func CreateAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in store.AccountInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		account, err := store.CreateAccount(db, in)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, account)
	}
}

// UpdateAccount applies a partial credentials update (PATCH or PUT).
func UpdateAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		var upd store.AccountUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		account, err := store.UpdateAccount(db, id, upd)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

func DeleteAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		web.Deleted(c, store.DeleteAccount(db, id))
	}
}
