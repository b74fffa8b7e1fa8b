package ports

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/order"
)

// ErrEventPublicationFailed is the sentinel for broker publication failures.
var ErrEventPublicationFailed = errors.New("event publication failed")

// EventPublicationError is returned when the downstream broker rejects or
// cannot receive an event. It unwraps to ErrEventPublicationFailed.
//
// Publication failures are never swallowed: the condition propagates to the
// caller even though the triggering write has already been committed.
type EventPublicationError struct {
	Topic string
	Cause error
}

// NewEventPublicationError creates an EventPublicationError for the given topic.
func NewEventPublicationError(topic string, cause error) *EventPublicationError {
	return &EventPublicationError{Topic: topic, Cause: cause}
}

// Error implements the error interface.
func (e *EventPublicationError) Error() string {
	return fmt.Sprintf("%s: topic is: %s (cause: %v)", ErrEventPublicationFailed, e.Topic, e.Cause)
}

// Unwrap returns the sentinel error for use with errors.Is.
func (e *EventPublicationError) Unwrap() error {
	return ErrEventPublicationFailed
}

// OrderPlacedPublisher publishes order placement events to the message broker.
// Publish is synchronous from the caller's perspective: it returns only after
// the broker has accepted the event or the attempt has failed.
type OrderPlacedPublisher interface {
	Publish(ctx context.Context, event order.OrderPlacedEvent) error
}
