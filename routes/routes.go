package routes

import (
	"github.com/Lacoustre/food-delivery-app-sub001/notify"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up Auth, User, Admin,
// Order and API route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, dispatcher *notify.Dispatcher, email notify.EmailSender) {
	// Public Auth routes (no middleware)
	SetupAuthRoutes(r, db, dispatcher)

	// User routes (JWT protected)
	SetupUserRoutes(r, db, dispatcher)

	// Guest routes (guest JWT protected)
	SetupGuestRoutes(r, db)

	// Admin routes (API key protected)
	SetupAdminRoutes(r, db)

	// Order routes
	SetupOrderRoutes(r, db, dispatcher)

	// Frontend-facing notification API
	SetupNotificationRoutes(r, dispatcher, email)
}
