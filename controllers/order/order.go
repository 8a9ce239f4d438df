package orderControllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/Lacoustre/food-delivery-app-sub001/notify"
	"github.com/Lacoustre/food-delivery-app-sub001/promo"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------- Request Structs --------
type PlaceOrderRequest struct {
	OrderType     string         `json:"order_type"` // "delivery" (default) or "pickup"
	PaymentMethod string         `json:"payment_method"`
	PromoCode     string         `json:"promo_code"`
	CustomerName  string         `json:"customer_name" binding:"required"`
	CustomerEmail string         `json:"customer_email" binding:"required,email"`
	CustomerPhone string         `json:"customer_phone" binding:"required"`
	Address       models.Address `json:"address"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

type UpdateDeliveryEstimateRequest struct {
	EstimatedDeliveryAt time.Time `json:"estimated_delivery_at" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch s := models.OrderStatus(strings.ToLower(status)); s {
	case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusPreparing,
		models.OrderStatusReady, models.OrderStatusOutForDelivery, models.OrderStatusDelivered,
		models.OrderStatusCompleted, models.OrderStatusCancelled:
		return s, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch s := models.PaymentStatus(strings.ToLower(status)); s {
	case models.PaymentStatusPending, models.PaymentStatusPaid,
		models.PaymentStatusFailed, models.PaymentStatusRefunded:
		return s, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

func mapOrderType(t string) (models.OrderType, error) {
	switch ot := models.OrderType(strings.ToLower(t)); ot {
	case "":
		return models.OrderTypeDelivery, nil
	case models.OrderTypeDelivery, models.OrderTypePickup:
		return ot, nil
	default:
		return "", errors.New("invalid order type")
	}
}

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func deliveryFee(orderType models.OrderType) float64 {
	if orderType == models.OrderTypePickup {
		return 0
	}
	return 4.99
}

// -------- Core Logic --------

// PlaceOrder turns the user's cart into an order. Line items are snapshots of
// the cart lines, the promo (if any) is validated against the subtotal and
// its usage recorded, and the cart is cleared, all in one transaction.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, errors.New("cart is empty")
	}
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	orderType, err := mapOrderType(req.OrderType)
	if err != nil {
		return nil, err
	}

	subtotal := models.CartTotal(cart.Items)

	var discount float64
	var promoCode string
	if req.PromoCode != "" {
		result, err := promo.Validate(db, req.PromoCode, subtotal)
		if err != nil {
			return nil, err
		}
		discount = result.Discount
		promoCode = result.Promotion.Code
	}

	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		orderItems = append(orderItems, models.OrderItem{
			MealID:      item.MealID,
			MealName:    item.MealName,
			MealImage:   item.MealImage,
			MealPrice:   item.MealPrice,
			ExtrasPrice: item.ExtrasPrice,
			Extras:      item.Extras,
			Quantity:    item.Quantity,
		})
	}

	fee := deliveryFee(orderType)
	order := models.Order{
		OrderRef:        generateOrderRef(),
		UserID:          userID,
		Items:           orderItems,
		OrderType:       orderType,
		Subtotal:        subtotal,
		DiscountAmount:  discount,
		PromoCode:       promoCode,
		DeliveryFee:     fee,
		TotalAmount:     subtotal - discount + fee,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		PaymentMethod:   req.PaymentMethod,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.Address,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if promoCode != "" {
			if err := promo.RecordUse(tx, promoCode); err != nil {
				return err
			}
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// Place order (user)
func PlaceOrderHandler(db *gorm.DB, dispatcher *notify.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		for _, event := range orderTracker.Observe([]models.Order{*order}) {
			broadcastOrderEvent(event)
		}
		if dispatcher != nil {
			go dispatcher.SendConfirmationChannels(context.Background(), notify.OrderEmailData{
				OrderRef:     order.OrderRef,
				CustomerName: order.CustomerName,
				Email:        order.CustomerEmail,
				Phone:        order.CustomerPhone,
				Total:        order.TotalAmount,
				Status:       order.Status,
			})
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order": order})
	}
}

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal.(string)).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// Get single order by ID or order_ref
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Where("id::text = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// Update order status (staff). A valid transition is enforced, then the
// change fans out to the websocket feed and the notification dispatcher.
func UpdateOrderStatusHandler(db *gorm.DB, dispatcher *notify.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
			return
		}

		if !models.ValidStatusTransition(order.Status, newStatus) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "invalid status transition from " + string(order.Status) + " to " + string(newStatus),
			})
			return
		}

		// Record the pre-update state; gorm writes the new status back into
		// the model, so the prior status must be captured here.
		orderTracker.Observe([]models.Order{order})

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		order.Status = newStatus
		order.UpdatedAt = time.Now()

		for _, event := range orderTracker.Observe([]models.Order{order}) {
			broadcastOrderEvent(event)
		}
		if dispatcher != nil {
			// Best-effort: channel outcomes never affect this response.
			go dispatcher.OrderStatusChanged(context.Background(), order)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": order})
	}
}

// Cancel order (user). Orders are never deleted, only cancelled.
func CancelOrderHandler(db *gorm.DB, dispatcher *notify.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", orderID, userIDVal.(string)).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		if !models.ValidStatusTransition(order.Status, models.OrderStatusCancelled) {
			c.JSON(http.StatusConflict, gin.H{"error": "order can no longer be cancelled"})
			return
		}

		orderTracker.Observe([]models.Order{order})

		if err := db.Model(&order).Update("status", models.OrderStatusCancelled).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel order"})
			return
		}
		order.Status = models.OrderStatusCancelled
		order.UpdatedAt = time.Now()

		for _, event := range orderTracker.Observe([]models.Order{order}) {
			broadcastOrderEvent(event)
		}
		if dispatcher != nil {
			go dispatcher.OrderStatusChanged(context.Background(), order)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}

// Update payment status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("payment_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}

// Update delivery estimate (staff)
func UpdateDeliveryEstimateHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateDeliveryEstimateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if models.IsTerminalStatus(order.Status) {
			c.JSON(http.StatusConflict, gin.H{"error": "order is already finished"})
			return
		}

		if err := db.Model(&order).Update("estimated_delivery_at", req.EstimatedDeliveryAt).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update delivery estimate"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery estimate updated"})
	}
}
