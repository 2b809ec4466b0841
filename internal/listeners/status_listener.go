package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sourcing-system/internal/events"
	"sourcing-system/pkg/eventbus"
	"sourcing-system/pkg/websocket"
)

// StatusListener pushes observed workflow status transitions to the owning
// buyer's websocket connections so badges update without waiting for the
// next client poll.
type StatusListener struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewStatusListener(hub *websocket.Hub, logger *zap.Logger) *StatusListener {
	return &StatusListener{hub: hub, logger: logger}
}

// Register subscribes the listener on the bus.
func (l *StatusListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.EventStatusChanged, l.handleStatusChanged)
}

func (l *StatusListener) handleStatusChanged(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.StatusChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload %T for %s", event, event.Name())
	}

	l.hub.SendToUser(e.BuyerID, websocket.MessageTypeStatusChanged, websocket.StatusChangePayload{
		CartID:         e.CartID,
		PreviousStatus: e.Previous.String(),
		Status:         e.Current.String(),
		Label:          e.Current.Label(),
		BadgeClass:     string(e.Current.BadgeClass()),
	})

	l.logger.Debug("status change pushed",
		zap.String("cart_id", e.CartID),
		zap.Int64("buyer_id", e.BuyerID),
		zap.String("status", e.Current.String()),
	)
	return nil
}
