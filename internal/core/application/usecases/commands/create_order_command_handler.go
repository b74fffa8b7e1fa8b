package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Validates every referenced product against the menu, persists the order in
// Pending status, and publishes the placement event for the kitchen.
//
// The event is published after the transaction commits. A publication failure
// propagates to the caller while the order stays persisted: placement is
// at-least-once, publication is best-effort, and a placed-but-unpublished
// order is an accepted outcome of a broker outage rather than a reason to
// roll back.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderPlacedPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence and a publisher
// for the placement event.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderPlacedPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
//
// Every referenced product must exist on the menu and be active; a missing
// product propagates as ObjectNotFoundError and an unavailable one as
// InactiveProductError. On success the order is persisted in Pending status
// and the OrderPlaced event is published.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	for _, item := range cmd.Items() {
		menuProduct, err := productRepo.Get(ctx, item.ProductID())
		if err != nil {
			return err
		}

		if err = menuProduct.EnsureOrderable(); err != nil {
			return err
		}
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.TableNumber(), cmd.Items())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The order is committed at this point; publication failures must reach
	// the caller but never undo the placement.
	return h.publisher.Publish(ctx, order.NewOrderPlacedEvent(newOrder))
}
