package routes

import (
	cartControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/cart"
	mealController "github.com/Lacoustre/food-delivery-app-sub001/controllers/meal"
	notificationControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/notification"
	promoControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/promo"
	reviewControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/review"
	userControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/user"
	"github.com/Lacoustre/food-delivery-app-sub001/middleware"
	"github.com/Lacoustre/food-delivery-app-sub001/notify"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the public storefront catalog plus all
// JWT-protected "/user/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, dispatcher *notify.Dispatcher) {
	// ──────────────── Public Catalog ────────────────
	r.GET("/meals", mealController.GetMeals(db))
	r.GET("/meals/:id", mealController.GetMealByID(db))
	r.GET("/meals/:id/reviews", reviewControllers.GetMealReviews(db))
	r.GET("/categories", mealController.GetCategoriesWithMeals(db))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.AddCartItem(db))
			cartGroup.PUT("/:meal_id", cartControllers.SetCartItemQuantity(db))
			cartGroup.DELETE("/:meal_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Promo Codes ────────────────
		userGroup.POST("/promo/validate", promoControllers.ValidatePromo(db))

		// ──────────────── Reviews ────────────────
		userGroup.POST("/meals/:meal_id/reviews", reviewControllers.SubmitReview(db))

		// ──────────────── Notifications ────────────────
		notifGroup := userGroup.Group("/notifications")
		{
			notifGroup.GET("/", notificationControllers.GetUserNotifications(dispatcher))
			notifGroup.PUT("/:id/read", notificationControllers.MarkNotificationRead(dispatcher))
		}
	}
}
