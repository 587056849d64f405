// Package rabbitmq implements the location publisher port over an AMQP topic
// exchange. Each sample is published under "drone.location.<droneID>" so
// consumers can bind to one drone or to the whole fleet.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"fastfood/internal/core/domain/model/tracking"

	"github.com/rabbitmq/amqp091-go"
)

// locationMessage is the wire shape of one published sample.
type locationMessage struct {
	DroneID   string  `json:"droneId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// Publisher fans drone positions out through a durable topic exchange.
type Publisher struct {
	conn     *amqp091.Connection
	exchange string
}

// NewPublisher connects to the broker and declares the exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer func() {
		_ = ch.Close()
	}()

	if err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, exchange: exchange}, nil
}

// PublishLocation publishes the sample under its drone's routing key.
func (p *Publisher) PublishLocation(ctx context.Context, sample tracking.Sample) error {
	payload, err := json.Marshal(locationMessage{
		DroneID:   sample.DroneID().String(),
		Latitude:  sample.Point().Latitude(),
		Longitude: sample.Point().Longitude(),
		Timestamp: sample.Timestamp(),
	})
	if err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() {
		_ = ch.Close()
	}()

	routingKey := fmt.Sprintf("drone.location.%s", sample.DroneID())

	return ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        payload,
	})
}

// Close closes the broker connection.
func (p *Publisher) Close() error {
	return p.conn.Close()
}
