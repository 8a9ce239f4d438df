package routes

import (
	orderControllers "github.com/Lacoustre/food-delivery-app-sub001/controllers/order"
	"github.com/Lacoustre/food-delivery-app-sub001/middleware"
	"github.com/Lacoustre/food-delivery-app-sub001/notify"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, dispatcher *notify.Dispatcher) {
	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Customer-facing order endpoints (JWT)
		userOrders := orders.Group("")
		userOrders.Use(middleware.ValidateToken)
		{
			userOrders.POST("/place", orderControllers.PlaceOrderHandler(db, dispatcher))
			userOrders.GET("/mine", orderControllers.GetUserOrdersHandler(db))
			userOrders.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(db, dispatcher))
		}

		// Back-office order endpoints (API key)
		adminOrders := orders.Group("")
		adminOrders.Use(middleware.ValidateAPIKey)
		{
			adminOrders.GET("/", orderControllers.GetAllOrdersHandler(db))
			adminOrders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			adminOrders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db, dispatcher))
			adminOrders.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
			adminOrders.PUT("/:orderID/delivery-estimate", orderControllers.UpdateDeliveryEstimateHandler(db))
		}
	}
}
