package orderControllers

import (
	"testing"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/Lacoustre/food-delivery-app-sub001/notify"
)

func TestStatusChangeEventCarriesPriorStatus(t *testing.T) {
	order := models.Order{ID: 9001, OrderRef: "20250101120000-x", Status: models.OrderStatusPending}
	orderTracker.Observe([]models.Order{order})

	// The status-update handler mutates the loaded model in place after the
	// DB write; the event's previous status must still be the recorded one.
	order.Status = models.OrderStatusConfirmed
	events := orderTracker.Observe([]models.Order{order})

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Type != notify.EventOrderStatusChanged {
		t.Errorf("event type = %q, want %q", events[0].Type, notify.EventOrderStatusChanged)
	}
	if events[0].PreviousStatus != models.OrderStatusPending {
		t.Errorf("previous status = %q, want %q", events[0].PreviousStatus, models.OrderStatusPending)
	}
	if events[0].Order.Status != models.OrderStatusConfirmed {
		t.Errorf("order status = %q, want %q", events[0].Order.Status, models.OrderStatusConfirmed)
	}
}

func TestWatcherDoesNotRepeatHandlerEvents(t *testing.T) {
	order := models.Order{ID: 9002, OrderRef: "20250101130000-y", Status: models.OrderStatusPending}

	// Placement announced by the handler.
	events := orderTracker.Observe([]models.Order{order})
	if len(events) != 1 || events[0].Type != notify.EventOrderAdded {
		t.Fatalf("placement: got %v, want one added event", events)
	}

	// The watcher's next poll delivers the same snapshot and must stay quiet.
	if events := orderTracker.Observe([]models.Order{order}); len(events) != 0 {
		t.Errorf("re-delivered snapshot produced %d events, want 0", len(events))
	}

	// A handler-recorded status change must also be quiet on the next poll.
	order.Status = models.OrderStatusConfirmed
	orderTracker.Observe([]models.Order{order})
	if events := orderTracker.Observe([]models.Order{order}); len(events) != 0 {
		t.Errorf("already-recorded change produced %d events, want 0", len(events))
	}
}
