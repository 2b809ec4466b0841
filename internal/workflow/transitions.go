package workflow

import "fmt"

// OrderStatus mirrors the platform's order status vocabulary for fulfillment.
//
// Valid status graph:
//
//	confirmed ─► in_production ─► quality_check ─► ready_to_ship ─► shipped ─► delivered ─► completed
//	    │              │               │                │
//	    └──────────────┴───────────────┴────────────────┴──► cancelled
//
// completed, cancelled and refunded are terminal.
type OrderStatus string

const (
	OrderConfirmed    OrderStatus = "confirmed"
	OrderInProduction OrderStatus = "in_production"
	OrderQualityCheck OrderStatus = "quality_check"
	OrderReadyToShip  OrderStatus = "ready_to_ship"
	OrderShipped      OrderStatus = "shipped"
	OrderDelivered    OrderStatus = "delivered"
	OrderCompleted    OrderStatus = "completed"
	OrderCancelled    OrderStatus = "cancelled"
	OrderRefunded     OrderStatus = "refunded"
)

// validTransitions lists every allowed (from -> to) pair. The table is served
// to UIs as a hint for rendering action buttons; the platform enforces it
// server-side on write.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderConfirmed:    {OrderInProduction, OrderCancelled},
	OrderInProduction: {OrderQualityCheck, OrderCancelled},
	OrderQualityCheck: {OrderReadyToShip, OrderInProduction, OrderCancelled},
	OrderReadyToShip:  {OrderShipped, OrderCancelled},
	OrderShipped:      {OrderDelivered},
	OrderDelivered:    {OrderCompleted, OrderRefunded},
	// completed, cancelled and refunded are terminal
}

// ParseOrderStatus converts a raw string to an OrderStatus, returning an
// error for unknown values.
func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	switch st {
	case OrderConfirmed, OrderInProduction, OrderQualityCheck, OrderReadyToShip,
		OrderShipped, OrderDelivered, OrderCompleted, OrderCancelled, OrderRefunded:
		return st, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// CanTransition reports whether moving from -> to is permitted.
func CanTransition(from, to OrderStatus) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition returns the new status when the move is allowed and an
// error otherwise.
func ApplyTransition(from, to OrderStatus) (OrderStatus, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("order status transition %q -> %q is not allowed", from, to)
	}
	return to, nil
}

// NextStatuses returns the allowed next statuses, empty for terminal states.
func NextStatuses(from OrderStatus) []OrderStatus {
	next := validTransitions[from]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}
