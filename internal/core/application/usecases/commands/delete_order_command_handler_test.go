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

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	newHandler := func(uow *MockUoW) commands.DeleteOrderCommandHandler {
		factory := FuncOrderUoWFactory(func() commands.OrderUoW { return uow })
		return commands.NewDeleteOrderCommandHandler(factory)
	}

	t.Run("should soft delete an active order", func(t *testing.T) {
		aggregate := pendingOrder(t)
		cmd, err := commands.NewDeleteOrderCommand(aggregate.ID())
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
		assert.True(t, aggregate.IsDeleted())
		require.NotNil(t, aggregate.DeletedAt())
		// The workflow state survives deletion for auditing.
		assert.Equal(t, order.Pending, aggregate.Status())
		uow.AssertCalled(t, "Commit", ctx)
	})

	t.Run("should report not found for unknown or already deleted order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cmd, err := commands.NewDeleteOrderCommand(orderID)
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
		uow.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		handler := newHandler(newMockUoW())

		err := handler.Handle(ctx, commands.DeleteOrderCommand{})

		require.Error(t, err)
		assert.Equal(t, commands.ErrDeleteOrderCommandIsNotConstructed, err)
	})
}

func TestDeleteAllOrdersCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	newHandler := func(uow *MockUoW) commands.DeleteAllOrdersCommandHandler {
		factory := FuncOrderUoWFactory(func() commands.OrderUoW { return uow })
		return commands.NewDeleteAllOrdersCommandHandler(factory)
	}

	t.Run("should soft delete every active order", func(t *testing.T) {
		first := pendingOrder(t)
		second := pendingOrder(t)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(errors.New("no transaction"))
		uow.orderRepo.On("GetAllActive", ctx).Return([]*order.Order{first, second}, nil)
		uow.orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

		handler := newHandler(uow)
		deleted, err := handler.Handle(ctx, commands.NewDeleteAllOrdersCommand())

		require.NoError(t, err)
		assert.Equal(t, 2, deleted)
		assert.True(t, first.IsDeleted())
		assert.True(t, second.IsDeleted())
		uow.orderRepo.AssertNumberOfCalls(t, "Update", 2)
	})

	t.Run("should return zero when no active orders exist", func(t *testing.T) {
		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(errors.New("no transaction"))
		uow.orderRepo.On("GetAllActive", ctx).Return([]*order.Order{}, nil)

		handler := newHandler(uow)
		deleted, err := handler.Handle(ctx, commands.NewDeleteAllOrdersCommand())

		require.NoError(t, err)
		assert.Equal(t, 0, deleted)
		uow.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		handler := newHandler(newMockUoW())

		_, err := handler.Handle(ctx, commands.DeleteAllOrdersCommand{})

		require.Error(t, err)
		assert.Equal(t, commands.ErrDeleteAllOrdersCommandIsNotConstructed, err)
	})
}
