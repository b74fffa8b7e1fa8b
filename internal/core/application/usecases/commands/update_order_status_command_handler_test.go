package commands_test

import (
	"context"
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(kernel.NewUUID(), validTable(t), validItems(t))
	require.NoError(t, err)
	return aggregate
}

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	newHandler := func(uow *MockUoW) commands.UpdateOrderStatusCommandHandler {
		factory := FuncOrderUoWFactory(func() commands.OrderUoW { return uow })
		return commands.NewUpdateOrderStatusCommandHandler(factory)
	}

	t.Run("should move pending order into preparation", func(t *testing.T) {
		aggregate := pendingOrder(t)
		cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.InPreparation)
		require.NoError(t, err)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(errors.New("no transaction"))
		uow.orderRepo.On("GetActive", ctx, aggregate.ID()).Return(aggregate, nil)
		uow.orderRepo.On("Update", ctx, aggregate).Return(nil)

		handler := newHandler(uow)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.InPreparation, aggregate.Status())
		uow.orderRepo.AssertCalled(t, "Update", ctx, aggregate)
		uow.AssertCalled(t, "Commit", ctx)
	})

	t.Run("should reject an illegal transition without persisting", func(t *testing.T) {
		aggregate := pendingOrder(t)
		cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Ready)
		require.NoError(t, err)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		uow.orderRepo.On("GetActive", ctx, aggregate.ID()).Return(aggregate, nil)

		handler := newHandler(uow)
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)

		var transitionErr *order.InvalidStatusTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.Pending, transitionErr.From)
		assert.Equal(t, order.Ready, transitionErr.To)

		assert.Equal(t, order.Pending, aggregate.Status())
		uow.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should report not found for unknown order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.InPreparation)
		require.NoError(t, err)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		uow.orderRepo.On("GetActive", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String()))

		handler := newHandler(uow)
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		handler := newHandler(newMockUoW())

		err := handler.Handle(ctx, commands.UpdateOrderStatusCommand{})

		require.Error(t, err)
		assert.Equal(t, commands.ErrUpdateOrderStatusCommandIsNotConstructed, err)
	})
}
