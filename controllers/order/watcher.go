package orderControllers

import (
	"context"
	"log"
	"time"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/Lacoustre/food-delivery-app-sub001/notify"
	"gorm.io/gorm"
)

// orderTracker is shared between the HTTP handlers and the polling watcher.
// Handlers record their own mutations here, so the watcher's next tick sees
// them as already-known and only out-of-band changes produce events.
var orderTracker = notify.NewTracker()

// RunOrderWatcher polls recent orders and turns the snapshots into typed
// events. It catches changes made outside the API handlers (direct DB edits,
// other instances) and feeds them to the websocket clients and the
// dispatcher. The dispatcher dedupes by (order, status), so a change already
// announced by a handler is not announced twice.
func RunOrderWatcher(ctx context.Context, db *gorm.DB, dispatcher *notify.Dispatcher, interval time.Duration) {
	// Seed with the current state so startup produces no events.
	var initial []models.Order
	if err := db.Find(&initial).Error; err == nil {
		orderTracker.Observe(initial)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var orders []models.Order
			cutoff := time.Now().Add(-2 * interval)
			if err := db.Where("updated_at > ?", cutoff).Find(&orders).Error; err != nil {
				log.Printf("❌ Order watcher scan failed: %v", err)
				continue
			}

			for _, event := range orderTracker.Observe(orders) {
				broadcastOrderEvent(event)
				if event.Type == notify.EventOrderStatusChanged && dispatcher != nil {
					if err := dispatcher.OrderStatusChanged(ctx, event.Order); err != nil {
						log.Printf("❌ Watcher notify failed for order %s: %v", event.Order.OrderRef, err)
					}
				}
			}
		}
	}
}
