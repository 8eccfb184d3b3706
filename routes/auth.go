package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mariafernandahr/pharmacy-api/auth"
	"github.com/mariafernandahr/pharmacy-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.Login(db))
		authGroup.GET("/me", middleware.ValidateToken, auth.Me(db))
	}
}
