package controllers

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sourcing-system/pkg/utils"
	"sourcing-system/pkg/websocket"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is already constrained by the CORS middleware in front.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebsocketController struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewWebsocketController(hub *websocket.Hub, logger *zap.Logger) *WebsocketController {
	return &WebsocketController{hub: hub, logger: logger}
}

// Serve upgrades the connection and registers it for status-change pushes
// addressed to the authenticated user.
func (c *WebsocketController) Serve(ctx echo.Context) error {
	userID, err := utils.UserIDFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Warn("websocket upgrade failed", zap.Error(err))
		return err
	}

	client := websocket.NewClient(c.hub, conn, userID, c.logger)
	c.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
	return nil
}
