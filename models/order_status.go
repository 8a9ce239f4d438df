package models

import "fmt"

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"          // Order placed, awaiting confirmation
	OrderStatusConfirmed      OrderStatus = "confirmed"        // Accepted by the kitchen
	OrderStatusPreparing      OrderStatus = "preparing"        // Being cooked
	OrderStatusReady          OrderStatus = "ready"            // Ready for pickup / handoff to driver
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery" // Driver on the way (delivery orders)
	OrderStatusDelivered      OrderStatus = "delivered"        // Customer received the order
	OrderStatusCompleted      OrderStatus = "completed"        // Pickup order handed over
	OrderStatusCancelled      OrderStatus = "cancelled"        // Cancelled before a terminal state
)

// IsTerminalStatus reports whether no further transition is allowed.
func IsTerminalStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidStatusTransition reports whether a staff update from one status to
// another follows the lifecycle. Cancellation is reachable from any
// non-terminal state.
func ValidStatusTransition(from, to OrderStatus) bool {
	if IsTerminalStatus(from) {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	allowed, ok := statusSuccessors[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

var statusSuccessors = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusConfirmed},
	OrderStatusConfirmed:      {OrderStatusPreparing},
	OrderStatusPreparing:      {OrderStatusReady},
	OrderStatusReady:          {OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCompleted},
	OrderStatusOutForDelivery: {OrderStatusDelivered},
}

// StatusMessage is the customer-facing line for a status change. It is total:
// every enumerated status has a message and anything unrecognized falls back
// to a generic update line instead of failing.
func StatusMessage(status OrderStatus, orderRef string) string {
	switch status {
	case OrderStatusPending:
		return fmt.Sprintf("We received your order #%s and are waiting for the kitchen to confirm it.", orderRef)
	case OrderStatusConfirmed:
		return fmt.Sprintf("Your order #%s has been confirmed by the kitchen.", orderRef)
	case OrderStatusPreparing:
		return fmt.Sprintf("Your order #%s is being prepared.", orderRef)
	case OrderStatusReady:
		return fmt.Sprintf("Your order #%s is ready!", orderRef)
	case OrderStatusOutForDelivery:
		return fmt.Sprintf("Your order #%s is out for delivery.", orderRef)
	case OrderStatusDelivered:
		return fmt.Sprintf("Your order #%s has been delivered. Enjoy your meal!", orderRef)
	case OrderStatusCompleted:
		return fmt.Sprintf("Your order #%s is complete. Thank you!", orderRef)
	case OrderStatusCancelled:
		return fmt.Sprintf("Your order #%s has been cancelled.", orderRef)
	default:
		return fmt.Sprintf("Your order #%s status has been updated.", orderRef)
	}
}
