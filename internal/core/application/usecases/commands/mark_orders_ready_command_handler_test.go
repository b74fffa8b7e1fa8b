package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func preparingOrder(t *testing.T, preparationStartedAt time.Time) *order.Order {
	t.Helper()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(),
		validTable(t),
		validItems(t),
		order.InPreparation,
		preparationStartedAt.Add(-time.Minute),
		preparationStartedAt,
		false,
		nil,
	)
	require.NoError(t, err)
	return aggregate
}

func TestNewMarkOrdersReadyCommand(t *testing.T) {
	t.Run("should create command with a cutoff", func(t *testing.T) {
		cutoff := time.Now().UTC()

		cmd, err := commands.NewMarkOrdersReadyCommand(cutoff)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.PreparedBefore().Equal(cutoff))
	})

	t.Run("should fail with zero cutoff", func(t *testing.T) {
		_, err := commands.NewMarkOrdersReadyCommand(time.Time{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value command should fail validation", func(t *testing.T) {
		var cmd commands.MarkOrdersReadyCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrMarkOrdersReadyCommandIsNotConstructed, err)
	})
}

func TestMarkOrdersReadyCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	newHandler := func(uow *MockUoW) commands.MarkOrdersReadyCommandHandler {
		factory := FuncOrderUoWFactory(func() commands.OrderUoW { return uow })
		return commands.NewMarkOrdersReadyCommandHandler(factory)
	}

	t.Run("should finish preparations that reached the cutoff", func(t *testing.T) {
		cutoff := time.Now().UTC()
		due := preparingOrder(t, cutoff.Add(-10*time.Minute))
		alsoDue := preparingOrder(t, cutoff)
		tooFresh := preparingOrder(t, cutoff.Add(time.Minute))

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(errors.New("no transaction"))
		uow.orderRepo.On("GetAllActiveInPreparation", ctx).
			Return([]*order.Order{due, alsoDue, tooFresh}, nil)
		uow.orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

		cmd, err := commands.NewMarkOrdersReadyCommand(cutoff)
		require.NoError(t, err)

		handler := newHandler(uow)
		finished, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, finished)
		assert.Equal(t, order.Ready, due.Status())
		assert.Equal(t, order.Ready, alsoDue.Status())
		assert.Equal(t, order.InPreparation, tooFresh.Status())
		uow.orderRepo.AssertNumberOfCalls(t, "Update", 2)
	})

	t.Run("should finish nothing when kitchen is empty", func(t *testing.T) {
		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(errors.New("no transaction"))
		uow.orderRepo.On("GetAllActiveInPreparation", ctx).Return([]*order.Order{}, nil)

		cmd, err := commands.NewMarkOrdersReadyCommand(time.Now().UTC())
		require.NoError(t, err)

		handler := newHandler(uow)
		finished, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 0, finished)
		uow.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		handler := newHandler(newMockUoW())

		_, err := handler.Handle(ctx, commands.MarkOrdersReadyCommand{})

		require.Error(t, err)
		assert.Equal(t, commands.ErrMarkOrdersReadyCommandIsNotConstructed, err)
	})
}
