package medicineControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariafernandahr/pharmacy-api/store"
	"github.com/mariafernandahr/pharmacy-api/web"
	"gorm.io/gorm"
)

func GetAllMedicines(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		medicines, err := store.ListMedicines(db)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, medicines)
	}
}

func GetMedicineByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		medicine, err := store.GetMedicine(db, id)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, medicine)
	}
}

func CreateMedicine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in store.MedicineInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		medicine, err := store.CreateMedicine(db, in)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, medicine)
	}
}

// UpdateMedicine applies a partial update (PATCH or PUT).
func UpdateMedicine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		var upd store.MedicineUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		medicine, err := store.UpdateMedicine(db, id, upd)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, medicine)
	}
}

// DeleteMedicine reports false while an order still references the medicine.
func DeleteMedicine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ID(c)
		if !ok {
			return
		}
		web.Deleted(c, store.DeleteMedicine(db, id))
	}
}
