package ws

import (
	"net/http"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/ports"

	gw "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

type Conn = gw.Conn

var upgrader = gw.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// Handler upgrades subscription requests and attaches the resulting clients
// to the hub.
type Handler struct {
	hub     *Hub
	catalog ports.Catalog
}

// NewHandler creates a websocket subscription handler.
func NewHandler(hub *Hub, catalog ports.Catalog) *Handler {
	return &Handler{hub: hub, catalog: catalog}
}

// Subscribe upgrades the connection and streams the drone's position updates
// until the client disconnects. Unknown drones are rejected before the
// upgrade.
func (h *Handler) Subscribe(c echo.Context) error {
	droneID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err = h.catalog.GetDrone(c.Request().Context(), droneID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		hub:     h.hub,
		conn:    conn,
		send:    make(chan []byte, 256),
		droneID: droneID.String(),
	}

	client.hub.register <- client
	go client.writePump()
	go client.readPump()

	return nil
}

// readPump drains inbound frames so close handshakes are noticed; the stream
// is one-directional otherwise.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	defer func() { _ = c.conn.Close() }()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(gw.TextMessage, msg); err != nil {
			return
		}
	}
}
