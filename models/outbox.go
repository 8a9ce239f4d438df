package models

import "time"

type OutboxChannel string
type OutboxStatus string

const (
	OutboxChannelEmail OutboxChannel = "email"
	OutboxChannelSMS   OutboxChannel = "sms"

	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"
)

// OutboxMessage records one delivery attempt per channel. Each channel keeps
// its own success/failure state so a failed SMS never blocks its sibling
// email; failed rows are retried by the outbox worker.
type OutboxMessage struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Channel   OutboxChannel `gorm:"type:VARCHAR(10);not null;index" json:"channel"`
	Recipient string        `gorm:"not null" json:"recipient"`
	Subject   string        `json:"subject"`
	Body      string        `gorm:"not null" json:"body"`
	OrderRef  string        `gorm:"index" json:"order_ref"`
	Status    OutboxStatus  `gorm:"type:VARCHAR(10);default:'pending';index" json:"status"`
	Attempts  int           `json:"attempts"`
	LastError string        `json:"last_error"`
	SentAt    *time.Time    `json:"sent_at"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
