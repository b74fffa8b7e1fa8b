// Package kafka publishes domain events to the message broker.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

// OrderPlacedKafkaPublisher sends order placement events to the kitchen topic.
// Implements ports.OrderPlacedPublisher.
//
// Messages are keyed by order id so every event for one order lands on the
// same partition and is consumed in publication order.
type OrderPlacedKafkaPublisher struct {
	writer *kafkago.Writer
}

// NewOrderPlacedKafkaPublisher creates a publisher over the given writer.
// The writer's topic determines where placement events go.
func NewOrderPlacedKafkaPublisher(writer *kafkago.Writer) *OrderPlacedKafkaPublisher {
	return &OrderPlacedKafkaPublisher{writer: writer}
}

// Publish serializes the event and writes it to the broker.
// Broker failures are wrapped in EventPublicationError so callers can map
// them to a service-unavailable condition.
func (p *OrderPlacedKafkaPublisher) Publish(ctx context.Context, event order.OrderPlacedEvent) error {
	value, err := json.Marshal(toMessage(event))
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Key:   []byte(event.OrderID.String()),
		Value: value,
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return ports.NewEventPublicationError(p.writer.Topic, err)
	}

	return nil
}

// Close releases the underlying writer.
func (p *OrderPlacedKafkaPublisher) Close() error {
	return p.writer.Close()
}

// itemMessage is one order line on the wire.
type itemMessage struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// orderPlacedPayload carries the order fields in the current message shape.
type orderPlacedPayload struct {
	OrderID     string        `json:"orderId"`
	TableNumber int           `json:"tableNumber"`
	Items       []itemMessage `json:"items"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// orderPlacedMessage is the wire format of the placement event. The order
// fields appear twice: once flat at the top level for consumers written
// against the first message shape, and once under payload for current ones.
// Consumers prefer the payload and fall back to the flat fields.
type orderPlacedMessage struct {
	EventID      string    `json:"eventId"`
	EventType    string    `json:"eventType"`
	EventVersion int       `json:"eventVersion"`
	OccurredAt   time.Time `json:"occurredAt"`

	OrderID     string        `json:"orderId"`
	TableNumber int           `json:"tableNumber"`
	Items       []itemMessage `json:"items"`
	CreatedAt   time.Time     `json:"createdAt"`

	Payload *orderPlacedPayload `json:"payload,omitempty"`
}

func toMessage(event order.OrderPlacedEvent) orderPlacedMessage {
	items := make([]itemMessage, 0, len(event.Items))
	for _, item := range event.Items {
		items = append(items, itemMessage{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		})
	}

	payload := orderPlacedPayload{
		OrderID:     event.OrderID.String(),
		TableNumber: event.TableNumber,
		Items:       items,
		CreatedAt:   event.CreatedAt,
	}

	return orderPlacedMessage{
		EventID:      event.EventID.String(),
		EventType:    event.EventType,
		EventVersion: event.EventVersion,
		OccurredAt:   event.OccurredAt,
		OrderID:      payload.OrderID,
		TableNumber:  payload.TableNumber,
		Items:        items,
		CreatedAt:    payload.CreatedAt,
		Payload:      &payload,
	}
}
