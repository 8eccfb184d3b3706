package routes

import (
	"github.com/gin-gonic/gin"
	labControllers "github.com/mariafernandahr/pharmacy-api/controllers/laboratory"
	"gorm.io/gorm"
)

func SetupLaboratoryRoutes(r *gin.Engine, db *gorm.DB) {
	labs := r.Group("/laboratories")
	{
		labs.GET("/all", labControllers.GetAllLaboratories(db))
		labs.GET("/:id", labControllers.GetLaboratoryByID(db))
		labs.POST("", labControllers.CreateLaboratory(db))
		labs.DELETE("/:id", labControllers.DeleteLaboratory(db))
	}
}
