package labControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariafernandahr/pharmacy-api/store"
	"github.com/mariafernandahr/pharmacy-api/web"
	"gorm.io/gorm"
)

func GetAllLaboratories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		labs, err := store.ListLaboratories(db)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, labs)
	}
}

func GetLaboratoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		lab, err := store.GetLaboratory(db, id)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, lab)
	}
}

func CreateLaboratory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in store.LaboratoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		lab, err := store.CreateLaboratory(db, in)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, lab)
	}
}

// DeleteLaboratory reports false while medicines still reference the lab.
func DeleteLaboratory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		web.Deleted(c, store.DeleteLaboratory(db, id))
	}
}
