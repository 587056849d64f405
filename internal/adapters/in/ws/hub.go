// Package ws fans drone position updates out to websocket subscribers.
// Clients subscribe per drone; the hub also implements the location
// publisher port so in-process broadcasting needs no broker round trip.
package ws

import (
	"context"
	"encoding/json"

	"fastfood/internal/core/domain/model/tracking"
)

// LocationUpdate is the wire shape pushed to subscribers.
type LocationUpdate struct {
	DroneID   string  `json:"droneId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// Client is one websocket subscription to a drone's position stream.
type Client struct {
	hub     *Hub
	conn    *Conn
	send    chan []byte
	droneID string
}

// Hub routes position updates to the clients subscribed to each drone.
// All registration state is owned by the Run goroutine.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan LocationUpdate
	clients    map[string]map[*Client]bool
}

// NewHub creates an empty hub. Call Run in its own goroutine.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan LocationUpdate),
		clients:    make(map[string]map[*Client]bool),
	}
}

// Run processes registrations and broadcasts until the context is cancelled,
// then closes every client's send channel.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			set, ok := h.clients[c.droneID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[c.droneID] = set
			}
			set[c] = true
		case c := <-h.unregister:
			if set, ok := h.clients[c.droneID]; ok {
				if _, exists := set[c]; exists {
					delete(set, c)
					close(c.send)
				}
				if len(set) == 0 {
					delete(h.clients, c.droneID)
				}
			}
		case upd := <-h.broadcast:
			msg, _ := json.Marshal(upd)
			if set, ok := h.clients[upd.DroneID]; ok {
				for c := range set {
					select {
					case c.send <- msg:
					default:
						// Slow consumer; drop it rather than block the hub.
						delete(set, c)
						close(c.send)
					}
				}
			}
		case <-ctx.Done():
			for _, set := range h.clients {
				for c := range set {
					close(c.send)
				}
			}
			return
		}
	}
}

// PublishLocation implements the location publisher port by broadcasting the
// sample to the drone's subscribers. The send is synchronous so successive
// samples for one drone arrive in publish order; once the hub has shut down
// the caller's context bounds the wait.
func (h *Hub) PublishLocation(ctx context.Context, sample tracking.Sample) error {
	upd := LocationUpdate{
		DroneID:   sample.DroneID().String(),
		Latitude:  sample.Point().Latitude(),
		Longitude: sample.Point().Longitude(),
		Timestamp: sample.Timestamp(),
	}
	select {
	case h.broadcast <- upd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
