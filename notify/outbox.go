package notify

import (
	"context"
	"log"
	"time"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
)

// maxAttempts is how often the worker retries a failed row before giving up.
const maxAttempts = 5

// enqueue records a delivery attempt. A nil db (tests without an outbox)
// yields an unpersisted row that is still delivered.
func (d *Dispatcher) enqueue(channel models.OutboxChannel, recipient, subject, body, orderRef string) *models.OutboxMessage {
	row := &models.OutboxMessage{
		Channel:   channel,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		OrderRef:  orderRef,
		Status:    models.OutboxStatusPending,
	}
	if d.db != nil {
		if err := d.db.Create(row).Error; err != nil {
			log.Printf("❌ Failed to record outbox row for order %s: %v", orderRef, err)
		}
	}
	return row
}

// deliver makes one attempt for a row and records the outcome.
func (d *Dispatcher) deliver(ctx context.Context, row *models.OutboxMessage) {
	var err error
	switch row.Channel {
	case models.OutboxChannelEmail:
		if d.email == nil {
			log.Printf("⚠️ Email sender not configured, leaving order %s email pending", row.OrderRef)
			return
		}
		err = d.email.Send(ctx, row.Recipient, row.Subject, row.Body)
	case models.OutboxChannelSMS:
		if d.sms == nil {
			log.Printf("⚠️ SMS sender not configured, leaving order %s SMS pending", row.OrderRef)
			return
		}
		err = d.sms.Send(ctx, row.Recipient, row.Body)
	}

	row.Attempts++
	if err != nil {
		row.Status = models.OutboxStatusFailed
		row.LastError = err.Error()
		log.Printf("❌ %s delivery failed for order %s (attempt %d): %v", row.Channel, row.OrderRef, row.Attempts, err)
	} else {
		now := time.Now()
		row.Status = models.OutboxStatusSent
		row.LastError = ""
		row.SentAt = &now
	}

	if d.db != nil && row.ID != 0 {
		if err := d.db.Model(row).Updates(map[string]interface{}{
			"status":     row.Status,
			"attempts":   row.Attempts,
			"last_error": row.LastError,
			"sent_at":    row.SentAt,
		}).Error; err != nil {
			log.Printf("❌ Failed to update outbox row %d: %v", row.ID, err)
		}
	}
}

// RunOutboxWorker retries failed and stuck-pending rows until the context is
// cancelled. Retrying is the worker's job; the inline sends never retry.
func (d *Dispatcher) RunOutboxWorker(ctx context.Context, interval time.Duration) {
	if d.db == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.retryPending(ctx)
		}
	}
}

func (d *Dispatcher) retryPending(ctx context.Context) {
	var rows []models.OutboxMessage
	cutoff := time.Now().Add(-time.Minute)
	err := d.db.
		Where("status = ? OR (status = ? AND updated_at < ?)",
			models.OutboxStatusFailed, models.OutboxStatusPending, cutoff).
		Where("attempts < ?", maxAttempts).
		Order("created_at").
		Limit(50).
		Find(&rows).Error
	if err != nil {
		log.Printf("❌ Outbox scan failed: %v", err)
		return
	}

	for i := range rows {
		d.deliver(ctx, &rows[i])
	}
}
