package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles order soft deletion.
//
// The lookup is restricted to active orders, which gives delete its
// idempotency contract: deleting an already soft-deleted order reports
// ObjectNotFoundError exactly like deleting an order that never existed.
// Retrying a successful delete is therefore safe and indistinguishable
// from "not found".
//
// Example:
//
//	handler := NewDeleteOrderCommandHandler(uowFactory)
//	cmd, _ := NewDeleteOrderCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errors.Is(err, errs.ErrObjectNotFound) for unknown or already deleted ids
//	}
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
// Requires an OrderUoWFactory for transactional persistence.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Marks the order deleted and persists it; the record and its status are
// retained for auditing, only its visibility changes.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetActive(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregate.MarkDeleted()
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
