package notify

import (
	"context"
	"log"
	"sync"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"gorm.io/gorm"
)

// Dispatcher fans one order-status change out to the in-app list, email and
// SMS. Channel failures are isolated: every outbound attempt is recorded as
// an outbox row with its own status, and a failed row never blocks its
// sibling channel or the caller.
type Dispatcher struct {
	store Store
	email EmailSender
	sms   SMSSender
	db    *gorm.DB
}

func NewDispatcher(db *gorm.DB, store Store, email EmailSender, sms SMSSender) *Dispatcher {
	return &Dispatcher{store: store, email: email, sms: sms, db: db}
}

// Store exposes the in-app list for the notification handlers.
func (d *Dispatcher) Store() Store { return d.store }

// OrderStatusChanged is invoked whenever a status change for the order's
// owner is observed. Duplicate (order, status) pairs are dropped here, so a
// re-delivered snapshot never re-notifies any channel.
func (d *Dispatcher) OrderStatusChanged(ctx context.Context, order models.Order) error {
	message := models.StatusMessage(order.Status, order.OrderRef)

	fresh, err := d.store.Push(ctx, order.UserID, Notification{
		ID:        NotificationID(order.ID, order.Status),
		OrderID:   order.ID,
		OrderRef:  order.OrderRef,
		Status:    order.Status,
		Message:   message,
		CreatedAt: order.UpdatedAt,
	})
	if err != nil {
		log.Printf("❌ Failed to store in-app notification for order %s: %v", order.OrderRef, err)
		// Outbound channels still get their attempt.
	} else if !fresh {
		return nil
	}

	data := OrderEmailData{
		OrderRef:     order.OrderRef,
		CustomerName: order.CustomerName,
		Email:        order.CustomerEmail,
		Phone:        order.CustomerPhone,
		Total:        order.TotalAmount,
		Status:       order.Status,
	}
	d.SendStatusChannels(ctx, data)
	return nil
}

// SendStatusChannels attempts email and SMS for one status change. The two
// sends start together and neither waits on the other's outcome; both
// failures end up in the outbox and the error log only.
func (d *Dispatcher) SendStatusChannels(ctx context.Context, data OrderEmailData) {
	var wg sync.WaitGroup

	if data.Email != "" {
		subject, html := ComposeStatusUpdate(data)
		row := d.enqueue(models.OutboxChannelEmail, data.Email, subject, html, data.OrderRef)
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.deliver(ctx, row)
		}()
	}

	if data.Phone != "" {
		row := d.enqueue(models.OutboxChannelSMS, data.Phone, "", ComposeStatusSMS(data), data.OrderRef)
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.deliver(ctx, row)
		}()
	}

	wg.Wait()
}

// SendWelcome attempts the welcome email for a newly created account.
func (d *Dispatcher) SendWelcome(ctx context.Context, data WelcomeEmailData) {
	if data.Email == "" {
		return
	}
	subject, html := ComposeWelcome(data)
	row := d.enqueue(models.OutboxChannelEmail, data.Email, subject, html, "")
	d.deliver(ctx, row)
}

// SendConfirmationChannels attempts the order-confirmation email and SMS.
func (d *Dispatcher) SendConfirmationChannels(ctx context.Context, data OrderEmailData) {
	var wg sync.WaitGroup

	if data.Email != "" {
		subject, html := ComposeOrderConfirmation(data)
		row := d.enqueue(models.OutboxChannelEmail, data.Email, subject, html, data.OrderRef)
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.deliver(ctx, row)
		}()
	}

	if data.Phone != "" {
		body := "We received your order #" + data.OrderRef + ". We'll text you as it progresses."
		row := d.enqueue(models.OutboxChannelSMS, data.Phone, "", body, data.OrderRef)
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.deliver(ctx, row)
		}()
	}

	wg.Wait()
}
