package routes

import (
	"github.com/gin-gonic/gin"
	medicineControllers "github.com/mariafernandahr/pharmacy-api/controllers/medicine"
	"gorm.io/gorm"
)

func SetupMedicineRoutes(r *gin.Engine, db *gorm.DB) {
	medicines := r.Group("/medicines")
	{
		medicines.GET("/all", medicineControllers.GetAllMedicines(db))
		medicines.GET("/:id", medicineControllers.GetMedicineByID(db))
		medicines.POST("", medicineControllers.CreateMedicine(db))
		medicines.DELETE("/:id", medicineControllers.DeleteMedicine(db))

		// Partial update
		medicines.PATCH("/:id", medicineControllers.UpdateMedicine(db))
		medicines.PUT("/:id", medicineControllers.UpdateMedicine(db))
	}
}
