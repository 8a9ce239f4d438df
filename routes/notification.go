package routes

import (
	notificationControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/notification"
	"github.com/Lacoustre/food-delivery-app-sub001/notify"
	"github.com/gin-gonic/gin"
)

// SetupNotificationRoutes registers the "/api/*" endpoints the storefront
// calls directly for outbound messaging.
func SetupNotificationRoutes(r *gin.Engine, dispatcher *notify.Dispatcher, email notify.EmailSender) {
	api := r.Group("/api")
	{
		api.POST("/send-email", notificationControllers.SendEmail(email))
		api.POST("/notifications/send", notificationControllers.SendNotification(dispatcher))
	}
}
