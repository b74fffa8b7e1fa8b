package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// MarkOrdersReadyCommandHandler finishes kitchen preparations.
// Scans active orders in preparation and moves those whose preparation
// started at or before the cutoff to Ready via the regular transition gate.
//
// Example:
//
//	handler := NewMarkOrdersReadyCommandHandler(uowFactory)
//	cmd, _ := NewMarkOrdersReadyCommand(time.Now().Add(-prepTime))
//
//	finished, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
type MarkOrdersReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrdersReadyCommandHandler creates a handler for the kitchen sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewMarkOrdersReadyCommandHandler(uowFactory OrderUoWFactory) MarkOrdersReadyCommandHandler {
	return MarkOrdersReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves due preparations to Ready and returns how many were finished.
func (h *MarkOrdersReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrdersReadyCommand) (int, error) {
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
	preparing, err := orderRepo.GetAllActiveInPreparation(ctx)
	if err != nil {
		return 0, err
	}

	finished := 0
	for _, aggregate := range preparing {
		if aggregate.UpdatedAt().After(cmd.PreparedBefore()) {
			continue
		}

		if err = aggregate.ChangeStatus(order.Ready); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		finished++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return finished, nil
}
