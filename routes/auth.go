package routes

import (
	"github.com/Lacoustre/food-delivery-app-sub001/auth"
	"github.com/Lacoustre/food-delivery-app-sub001/notify"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, dispatcher *notify.Dispatcher) {
	authGroup := r.Group("/auth")
	{
		// Regular user Google login
		authGroup.POST("/google-user", func(c *gin.Context) {
			auth.GoogleUserLoginHandler(c.Writer, c.Request, db, dispatcher)
		})

		// Google Admin login (wrapped as a Gin handler)
		authGroup.POST("/google-admin", func(c *gin.Context) {
			auth.GoogleAdminLoginHandler(c.Writer, c.Request, db)
		})

		authGroup.POST("/guest", auth.CreateGuestUser(db))
	}
}
