// Package kafka consumes domain events from the message broker and drives
// the application layer. It is the inbound edge of the kitchen worker.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	kafkago "github.com/segmentio/kafka-go"
)

// OrderPlacedConsumer listens for order placement events and moves each
// placed order into preparation.
//
// Delivery is at-least-once, so duplicates and stale events are expected.
// An event whose order is already past Pending trips the transition guard;
// that is logged and committed rather than retried, because redelivery can
// never make an illegal transition legal. The same goes for orders deleted
// between placement and consumption.
type OrderPlacedConsumer struct {
	reader  *kafkago.Reader
	handler commands.UpdateOrderStatusCommandHandler
	logger  *slog.Logger

	wg sync.WaitGroup
}

// NewOrderPlacedConsumer creates a consumer over the given reader.
func NewOrderPlacedConsumer(
	reader *kafkago.Reader,
	handler commands.UpdateOrderStatusCommandHandler,
	logger *slog.Logger,
) *OrderPlacedConsumer {
	return &OrderPlacedConsumer{
		reader:  reader,
		handler: handler,
		logger:  logger,
	}
}

// Start begins consuming in a background goroutine. It returns immediately;
// cancel the context and call Close to stop.
func (c *OrderPlacedConsumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.logger.Info("order placed consumer started", "topic", c.reader.Config().Topic)

		for {
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					c.logger.Info("order placed consumer stopping")
					return
				}
				c.logger.Error("failed to fetch message", "error", err)
				time.Sleep(time.Second)
				continue
			}

			c.processMessage(ctx, msg)

			if err = c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error("failed to commit message", "error", err)
			}
		}
	}()
}

// Close stops the underlying reader and waits for the consume loop to exit.
func (c *OrderPlacedConsumer) Close() error {
	err := c.reader.Close()
	c.wg.Wait()
	return err
}

func (c *OrderPlacedConsumer) processMessage(ctx context.Context, msg kafkago.Message) {
	event, err := decodeOrderPlaced(msg.Value)
	if err != nil {
		c.logger.Error("failed to decode order placed event",
			"error", err, "offset", msg.Offset)
		return
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(event.OrderID, order.InPreparation)
	if err != nil {
		c.logger.Error("failed to build status command",
			"error", err, "orderId", event.OrderID)
		return
	}

	err = c.handler.Handle(ctx, cmd)
	switch {
	case err == nil:
		c.logger.Info("order moved to preparation",
			"orderId", event.OrderID, "table", event.TableNumber)
	case errors.Is(err, order.ErrInvalidStatusTransition):
		// Duplicate delivery: the order is already being prepared or done.
		c.logger.Debug("order already past pending, skipping",
			"orderId", event.OrderID)
	case errors.Is(err, errs.ErrObjectNotFound):
		c.logger.Warn("order deleted before preparation started, skipping",
			"orderId", event.OrderID)
	default:
		c.logger.Error("failed to start preparation",
			"error", err, "orderId", event.OrderID)
	}
}

// orderPlacedEvent is the consumer's view of a placement event.
type orderPlacedEvent struct {
	EventVersion int
	OrderID      kernel.UUID
	TableNumber  int
}

// wireItem is one order line on the wire.
type wireItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// wirePayload is the nested order shape of the placement message. Fields are
// pointers so that an absent field can fall back to its flat counterpart.
type wirePayload struct {
	OrderID     *string    `json:"orderId"`
	TableNumber *int       `json:"tableNumber"`
	Items       []wireItem `json:"items"`
}

// wireMessage mirrors the producer's dual-shape format: the order fields
// appear flat at the top level and nested under payload.
type wireMessage struct {
	EventVersion *int `json:"eventVersion"`

	OrderID     string     `json:"orderId"`
	TableNumber int        `json:"tableNumber"`
	Items       []wireItem `json:"items"`

	Payload *wirePayload `json:"payload"`
}

// decodeOrderPlaced parses a placement message. Each field resolves from the
// nested payload first and falls back to its flat legacy counterpart, so a
// partially populated payload still decodes. A missing event version defaults
// to 1, the version that predates the field.
func decodeOrderPlaced(raw []byte) (orderPlacedEvent, error) {
	var msg wireMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return orderPlacedEvent{}, err
	}

	orderID := msg.OrderID
	if msg.Payload != nil && msg.Payload.OrderID != nil {
		orderID = *msg.Payload.OrderID
	}
	tableNumber := msg.TableNumber
	if msg.Payload != nil && msg.Payload.TableNumber != nil {
		tableNumber = *msg.Payload.TableNumber
	}

	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return orderPlacedEvent{}, err
	}

	version := 1
	if msg.EventVersion != nil {
		version = *msg.EventVersion
	}

	return orderPlacedEvent{
		EventVersion: version,
		OrderID:      id,
		TableNumber:  tableNumber,
	}, nil
}
