package routes

import (
	"github.com/gin-gonic/gin"
	medicineControllers "github.com/mariafernandahr/pharmacy-api/controllers/medicine"
	"github.com/mariafernandahr/pharmacy-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/medicines/export-excel", medicineControllers.ExportMedicinesToExcel(db))
	}
}
