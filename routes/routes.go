package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Entity CRUD routes
	SetupClientRoutes(r, db)
	SetupAccountRoutes(r, db)
	SetupLaboratoryRoutes(r, db)
	SetupMedicineRoutes(r, db)
	SetupOrderRoutes(r, db)

	// Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db)
}
