package notify

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
)

func TestMemoryStore_DedupByOrderAndStatus(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	n := Notification{
		ID:      NotificationID(7, models.OrderStatusConfirmed),
		OrderID: 7,
		Status:  models.OrderStatusConfirmed,
		Message: "confirmed",
	}

	fresh, err := store.Push(ctx, "user1", n)
	if err != nil || !fresh {
		t.Fatalf("first push: fresh=%v err=%v", fresh, err)
	}

	fresh, err = store.Push(ctx, "user1", n)
	if err != nil {
		t.Fatalf("duplicate push errored: %v", err)
	}
	if fresh {
		t.Error("duplicate (order, status) pair was not deduplicated")
	}

	// A new status for the same order is a new notification.
	n2 := n
	n2.ID = NotificationID(7, models.OrderStatusPreparing)
	n2.Status = models.OrderStatusPreparing
	if fresh, _ := store.Push(ctx, "user1", n2); !fresh {
		t.Error("new status for the same order should not be deduplicated")
	}

	list, err := store.List(ctx, "user1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(list))
	}
}

func TestMemoryStore_KeepsTenNewestOldestEvicted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i := 1; i <= 13; i++ {
		store.Push(ctx, "user1", Notification{
			ID:        NotificationID(uint(i), models.OrderStatusConfirmed),
			OrderID:   uint(i),
			Status:    models.OrderStatusConfirmed,
			CreatedAt: time.Now(),
		})
	}

	list, _ := store.List(ctx, "user1")
	if len(list) != 10 {
		t.Fatalf("expected 10 retained notifications, got %d", len(list))
	}
	if list[0].OrderID != 13 {
		t.Errorf("newest first: expected order 13 at head, got %d", list[0].OrderID)
	}
	for _, n := range list {
		if n.OrderID <= 3 {
			t.Errorf("order %d should have been evicted", n.OrderID)
		}
	}
}

func TestMemoryStore_MarkReadUpdatesOnlyThatEntry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i := 1; i <= 3; i++ {
		store.Push(ctx, "user1", Notification{
			ID:      NotificationID(uint(i), models.OrderStatusReady),
			OrderID: uint(i),
			Status:  models.OrderStatusReady,
		})
	}

	target := NotificationID(2, models.OrderStatusReady)
	if err := store.MarkRead(ctx, "user1", target); err != nil {
		t.Fatal(err)
	}

	list, _ := store.List(ctx, "user1")
	for _, n := range list {
		if n.ID == target && !n.Read {
			t.Error("target notification not marked read")
		}
		if n.ID != target && n.Read {
			t.Errorf("notification %s should still be unread", n.ID)
		}
	}

	if err := store.MarkRead(ctx, "user1", "999:ready"); err == nil {
		t.Error("expected error marking unknown notification read")
	}
}

func TestMemoryStore_ScopedPerUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Push(ctx, "user1", Notification{ID: "1:confirmed", OrderID: 1})
	store.Push(ctx, "user2", Notification{ID: "1:confirmed", OrderID: 1})

	l1, _ := store.List(ctx, "user1")
	l2, _ := store.List(ctx, "user2")
	if len(l1) != 1 || len(l2) != 1 {
		t.Errorf("lists should be independent per user: %d, %d", len(l1), len(l2))
	}
}

func TestNotificationID(t *testing.T) {
	got := NotificationID(42, models.OrderStatusOutForDelivery)
	want := fmt.Sprintf("42:%s", models.OrderStatusOutForDelivery)
	if got != want {
		t.Errorf("NotificationID = %q, want %q", got, want)
	}
}
