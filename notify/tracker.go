package notify

import (
	"sync"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
)

type EventType string

const (
	EventOrderAdded         EventType = "added"
	EventOrderStatusChanged EventType = "status_changed"
)

// OrderEvent is one typed change extracted from an order snapshot.
type OrderEvent struct {
	Type           EventType
	Order          models.Order
	PreviousStatus models.OrderStatus
}

// Tracker diffs full order snapshots into events. The underlying feed
// delivers whole result sets, not deltas, so re-delivering the same snapshot
// must produce no events.
type Tracker struct {
	mu   sync.Mutex
	seen map[uint]models.OrderStatus
}

func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uint]models.OrderStatus)}
}

// Observe records the snapshot and returns the changes since the last one.
func (t *Tracker) Observe(orders []models.Order) []OrderEvent {
	t.mu.Lock()
	defer t.mu.Unlock()

	var events []OrderEvent
	for _, o := range orders {
		prev, known := t.seen[o.ID]
		switch {
		case !known:
			events = append(events, OrderEvent{Type: EventOrderAdded, Order: o})
		case prev != o.Status:
			events = append(events, OrderEvent{
				Type:           EventOrderStatusChanged,
				Order:          o,
				PreviousStatus: prev,
			})
		}
		t.seen[o.ID] = o.Status
	}
	return events
}
