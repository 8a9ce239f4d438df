package routes

import (
	cartControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/cart"
	"github.com/Lacoustre/food-delivery-app-sub001/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupGuestRoutes registers the "/guest/*" cart endpoints. Guests carry the
// same JWT shape as users with a guest role, so the same middleware applies.
func SetupGuestRoutes(r *gin.Engine, db *gorm.DB) {
	guestGroup := r.Group("/guest")
	guestGroup.Use(middleware.ValidateToken)
	{
		cartGroup := guestGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetGuestCart(db))
			cartGroup.POST("/", cartControllers.AddGuestCartItem(db))
			cartGroup.DELETE("/:meal_id", cartControllers.DeleteGuestCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearGuestCart(db))
		}
	}
}
