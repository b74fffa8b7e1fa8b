package order

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// OrderPlacedEventType is the event type name carried on the wire.
const OrderPlacedEventType = "ORDER_PLACED"

// OrderPlacedEventVersion is the current payload version.
const OrderPlacedEventVersion = 1

// OrderPlacedItem is one ordered line as carried in the event.
type OrderPlacedItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// OrderPlacedEvent is the canonical domain event raised when an order is
// successfully placed. This is the single internal shape; any
// backward-compatible duplication of fields on the wire is the concern of
// the publishing adapter, not of this event.
type OrderPlacedEvent struct {
	EventID      kernel.UUID
	EventType    string
	EventVersion int
	OccurredAt   time.Time

	OrderID     kernel.UUID
	TableNumber int
	Items       []OrderPlacedItem
	CreatedAt   time.Time
}

// NewOrderPlacedEvent builds the placement event for an order.
func NewOrderPlacedEvent(o *Order) OrderPlacedEvent {
	items := make([]OrderPlacedItem, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, OrderPlacedItem{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderPlacedEvent{
		EventID:      kernel.NewUUID(),
		EventType:    OrderPlacedEventType,
		EventVersion: OrderPlacedEventVersion,
		OccurredAt:   time.Now().UTC(),
		OrderID:      o.ID(),
		TableNumber:  o.TableNumber().Value(),
		Items:        items,
		CreatedAt:    o.CreatedAt(),
	}
}
