package websocket

import "time"

// Envelope wraps every pushed message with a type tag so the frontend can
// dispatch on it.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// MessageTypeStatusChanged tags canonical workflow status transitions.
const MessageTypeStatusChanged = "workflow.status_changed"

// StatusChangePayload tells the UI which request moved and where to, with
// the label/badge pair ready to render.
type StatusChangePayload struct {
	CartID         string `json:"cartId"`
	PreviousStatus string `json:"previousStatus,omitempty"`
	Status         string `json:"status"`
	Label          string `json:"label"`
	BadgeClass     string `json:"badgeClass"`
}
