package commands

import (
	"context"
)

// DeleteAllOrdersCommandHandler soft-deletes every active order.
// Zero active orders is a normal outcome that yields count 0, not an error.
//
// Example:
//
//	handler := NewDeleteAllOrdersCommandHandler(uowFactory)
//	deleted, err := handler.Handle(ctx, NewDeleteAllOrdersCommand())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders deleted\n", deleted)
type DeleteAllOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteAllOrdersCommandHandler creates a handler for bulk order deletion.
// Requires an OrderUoWFactory for transactional persistence.
func NewDeleteAllOrdersCommandHandler(uowFactory OrderUoWFactory) DeleteAllOrdersCommandHandler {
	return DeleteAllOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle soft-deletes all active orders and returns how many were marked.
func (h *DeleteAllOrdersCommandHandler) Handle(ctx context.Context, cmd DeleteAllOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	activeOrders, err := orderRepo.GetAllActive(ctx)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range activeOrders {
		aggregate.MarkDeleted()
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(activeOrders), nil
}
