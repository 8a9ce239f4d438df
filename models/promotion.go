package models

import "time"

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFlat    DiscountType = "flat"
)

// Promotion is a named discount rule applied against an order subtotal.
// Codes are stored upper-cased; lookups upper-case their input first.
type Promotion struct {
	ID             uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Code           string       `gorm:"uniqueIndex;not null" json:"code"`
	Description    string       `json:"description"`
	DiscountType   DiscountType `gorm:"type:VARCHAR(10);not null" json:"discount_type"`
	Value          float64      `gorm:"not null" json:"value"` // percent (0-100) or flat amount
	MinOrderAmount float64      `json:"min_order_amount"`
	StartsAt       time.Time    `json:"starts_at"`
	ExpiresAt      time.Time    `json:"expires_at"`
	UsageLimit     int          `json:"usage_limit"` // 0 means unlimited
	UsedCount      int          `json:"used_count"`
	Active         bool         `gorm:"default:true" json:"active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
