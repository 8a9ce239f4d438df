package routes

import (
	adminController "github.com/Lacoustre/food-delivery-app-sub001/controllers/admin"
	cartControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/cart"
	mealController "github.com/Lacoustre/food-delivery-app-sub001/controllers/meal"
	promoControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/promo"
	reviewControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/review"
	userControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/user"
	"github.com/Lacoustre/food-delivery-app-sub001/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Meal Management ───────────
		mealAdmin := adminGroup.Group("/meals")
		{
			mealAdmin.POST("", mealController.CreateMeal(db))
			mealAdmin.PUT("/:id", mealController.UpdateMeal(db))
			mealAdmin.GET("", mealController.GetMeals(db))
			mealAdmin.DELETE("/:id", mealController.DeleteMeal(db))
			mealAdmin.POST("/import-excel", mealController.ImportMealsFromExcel(db))
			mealAdmin.GET("/export-excel", mealController.ExportMealsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", mealController.CreateCategory(db))
			categoryAdmin.PUT("/:id", mealController.UpdateCategory(db))
			categoryAdmin.GET("", mealController.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", mealController.DeleteCategory(db))
		}

		// ─────────── Promotion Management ───────────
		promoAdmin := adminGroup.Group("/promotions")
		{
			promoAdmin.POST("", promoControllers.CreatePromotion(db))
			promoAdmin.GET("", promoControllers.GetAllPromotions(db))
			promoAdmin.PUT("/:id", promoControllers.UpdatePromotion(db))
			promoAdmin.DELETE("/:id", promoControllers.DeletePromotion(db))
		}

		// ─────────── Review Moderation ───────────
		adminGroup.DELETE("/reviews/:id", reviewControllers.DeleteReview(db))

		// ─────────── Admin Approval Workflow ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(db))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(db))
			adminMgmt.POST("/reject", adminController.RejectAdmin(db))
		}

		bannerMgmt := adminGroup.Group("/banner")
		{
			bannerMgmt.POST("/upload", adminController.UploadBanner(db))
			bannerMgmt.GET("/", adminController.GetBanners(db))
			bannerMgmt.DELETE("/:id", adminController.DeleteBanner(db))
		}

		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(db))
		}

		// ─────────── Order Export ───────────
		adminGroup.GET("/orders/export-excel", adminController.ExportOrdersToExcel(db))
	}
}
