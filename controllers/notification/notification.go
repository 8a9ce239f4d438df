package notificationControllers

import (
	"net/http"

	"github.com/Lacoustre/food-delivery-app-sub001/notify"
	"github.com/gin-gonic/gin"
)

// SendEmailRequest is the body of POST /api/send-email. Which payload field
// is required depends on the type.
type SendEmailRequest struct {
	Type        string                   `json:"type" binding:"required"`
	OrderData   *notify.OrderEmailData   `json:"orderData"`
	WelcomeData *notify.WelcomeEmailData `json:"welcomeData"`
}

// SendNotificationRequest is the flat body of POST /api/notifications/send.
type SendNotificationRequest struct {
	Type string `json:"type" binding:"required"`
	notify.OrderEmailData
	OrderID uint `json:"orderId"`
}

// SendEmail handles POST /api/send-email. It dispatches a single email by
// type and reports the provider outcome directly to the caller.
func SendEmail(email notify.EmailSender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var to, subject, html string
		switch req.Type {
		case "confirmation":
			if req.OrderData == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Missing order data"})
				return
			}
			to = req.OrderData.Email
			subject, html = notify.ComposeOrderConfirmation(*req.OrderData)
		case "status_update":
			if req.OrderData == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Missing order data"})
				return
			}
			to = req.OrderData.Email
			subject, html = notify.ComposeStatusUpdate(*req.OrderData)
		case "welcome":
			if req.WelcomeData == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Missing welcome data"})
				return
			}
			to = req.WelcomeData.Email
			subject, html = notify.ComposeWelcome(*req.WelcomeData)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email type"})
			return
		}

		if email == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service is not configured"})
			return
		}
		if err := email.Send(c.Request.Context(), to, subject, html); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"to": to, "subject": subject}})
	}
}

// SendNotification handles POST /api/notifications/send. Delivery failures
// on individual channels are absorbed by the dispatcher, so the endpoint
// reports success once the fan-out has run.
func SendNotification(dispatcher *notify.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendNotificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		switch req.Type {
		case "order_confirmation":
			dispatcher.SendConfirmationChannels(c.Request.Context(), req.OrderEmailData)
		case "status_update":
			dispatcher.SendStatusChannels(c.Request.Context(), req.OrderEmailData)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification type"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GetUserNotifications handles GET /user/notifications.
func GetUserNotifications(dispatcher *notify.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		notifications, err := dispatcher.Store().List(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}
		if notifications == nil {
			notifications = []notify.Notification{}
		}
		c.JSON(http.StatusOK, gin.H{"notifications": notifications})
	}
}

// MarkNotificationRead handles PUT /user/notifications/:id/read.
func MarkNotificationRead(dispatcher *notify.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := dispatcher.Store().MarkRead(c.Request.Context(), userID, c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification as read"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
