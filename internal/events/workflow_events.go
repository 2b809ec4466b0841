package events

import "sourcing-system/internal/workflow"

// EventStatusChanged is published whenever a poll observes a request's
// canonical status move.
const EventStatusChanged = "workflow.status_changed"

type StatusChangedEvent struct {
	CartID   string
	BuyerID  int64
	TenantID string
	Previous workflow.CanonicalStatus
	Current  workflow.CanonicalStatus
}

func (e StatusChangedEvent) Name() string {
	return EventStatusChanged
}
