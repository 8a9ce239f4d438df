package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderType string
type PaymentStatus string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"

	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

// Order is created at checkout and never deleted; it only moves through
// status transitions until a terminal state. Line items are snapshots, not
// references, so later menu price changes never alter a placed order.
type Order struct {
	ID                  uint          `gorm:"primaryKey" json:"id"`
	OrderRef            string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID              string        `gorm:"not null;index" json:"user_id"`
	User                User          `gorm:"foreignKey:UserID" json:"user"`
	Items               []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	OrderType           OrderType     `gorm:"type:VARCHAR(20);default:'delivery'" json:"order_type"`
	Subtotal            float64       `json:"subtotal"`
	DiscountAmount      float64       `json:"discount_amount"`
	PromoCode           string        `json:"promo_code"`
	DeliveryFee         float64       `json:"delivery_fee"`
	TotalAmount         float64       `json:"total_amount"`
	Status              OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus       PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod       string        `json:"payment_method"` // e.g. "card", "cash"
	CustomerName        string        `json:"customer_name"`
	CustomerEmail       string        `json:"customer_email"`
	CustomerPhone       string        `json:"customer_phone"`
	DeliveryAddress     Address       `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery_address"`
	EstimatedDeliveryAt *time.Time    `json:"estimated_delivery_at"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

type OrderItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OrderID     uint           `gorm:"index" json:"order_id"`
	MealID      uint           `json:"meal_id"`
	MealName    string         `json:"meal_name"`
	MealImage   string         `json:"meal_image"`
	MealPrice   float64        `json:"meal_price"`
	ExtrasPrice float64        `json:"extras_price"`
	Extras      datatypes.JSON `json:"extras"`
	Quantity    int            `json:"quantity"`
}
