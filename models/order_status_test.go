package models

import (
	"strings"
	"testing"
)

var allStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func TestStatusMessage_TotalOverEnum(t *testing.T) {
	for _, s := range allStatuses {
		msg := StatusMessage(s, "A-100")
		if msg == "" {
			t.Errorf("StatusMessage(%q) returned empty string", s)
		}
		if !strings.Contains(msg, "A-100") {
			t.Errorf("StatusMessage(%q) should mention the order ref: %s", s, msg)
		}
	}
}

func TestStatusMessage_UnknownFallsBack(t *testing.T) {
	msg := StatusMessage("telepathic", "A-100")
	if msg == "" {
		t.Fatal("unknown status must fall back, not fail")
	}
	if !strings.Contains(msg, "updated") {
		t.Errorf("fallback should be the generic update line: %s", msg)
	}
}

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusReady, false},
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusPreparing, OrderStatusPending, false},
		{OrderStatusReady, OrderStatusOutForDelivery, true},
		{OrderStatusReady, OrderStatusDelivered, true},
		{OrderStatusReady, OrderStatusCompleted, true},
		{OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{OrderStatusOutForDelivery, OrderStatusReady, false},
		// cancel allowed from any non-terminal state
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusOutForDelivery, OrderStatusCancelled, true},
		// terminal states are final
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusConfirmed, false},
		{"", OrderStatusConfirmed, false},
	}
	for _, tt := range tests {
		if got := ValidStatusTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	terminal := map[OrderStatus]bool{
		OrderStatusDelivered: true,
		OrderStatusCompleted: true,
		OrderStatusCancelled: true,
	}
	for _, s := range allStatuses {
		if got := IsTerminalStatus(s); got != terminal[s] {
			t.Errorf("IsTerminalStatus(%q) = %v, want %v", s, got, terminal[s])
		}
	}
}
