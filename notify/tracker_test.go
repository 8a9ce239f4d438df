package notify

import (
	"testing"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
)

func TestTracker_FirstSnapshotIsAdded(t *testing.T) {
	tr := NewTracker()

	events := tr.Observe([]models.Order{
		{ID: 1, Status: models.OrderStatusPending},
		{ID: 2, Status: models.OrderStatusPreparing},
	})
	if len(events) != 2 {
		t.Fatalf("expected 2 added events, got %d", len(events))
	}
	for _, e := range events {
		if e.Type != EventOrderAdded {
			t.Errorf("expected added event, got %s", e.Type)
		}
	}
}

func TestTracker_RedeliveredSnapshotProducesNothing(t *testing.T) {
	tr := NewTracker()
	snapshot := []models.Order{{ID: 1, Status: models.OrderStatusPending}}

	tr.Observe(snapshot)
	if events := tr.Observe(snapshot); len(events) != 0 {
		t.Errorf("identical snapshot should produce no events, got %d", len(events))
	}
}

func TestTracker_StatusChangeCarriesPrevious(t *testing.T) {
	tr := NewTracker()
	tr.Observe([]models.Order{{ID: 1, Status: models.OrderStatusPending}})

	events := tr.Observe([]models.Order{{ID: 1, Status: models.OrderStatusConfirmed}})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Type != EventOrderStatusChanged {
		t.Errorf("expected status_changed, got %s", e.Type)
	}
	if e.PreviousStatus != models.OrderStatusPending {
		t.Errorf("expected previous status pending, got %s", e.PreviousStatus)
	}
	if e.Order.Status != models.OrderStatusConfirmed {
		t.Errorf("expected new status confirmed, got %s", e.Order.Status)
	}
}
