package models

import "time"

// GuestUser is an anonymous storefront session. It exists so a cart can be
// held before sign-in; expired sessions are fair game for cleanup.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
