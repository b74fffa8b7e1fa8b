package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("should create command with valid arguments", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.InPreparation)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, order.InPreparation, cmd.Status())
	})

	t.Run("should accept every known workflow status", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.InPreparation, order.Ready} {
			t.Run(status.String(), func(t *testing.T) {
				cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), status)

				require.NoError(t, err)
				assert.Equal(t, status, cmd.Status())
			})
		}
	})

	t.Run("should fail with zero order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, order.Ready)

		require.Error(t, err)
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("should fail with out of range status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Status(42))

		require.Error(t, err)
	})

	t.Run("zero value command should fail validation", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrUpdateOrderStatusCommandIsNotConstructed, err)
	})
}

func TestNewDeleteOrderCommand(t *testing.T) {
	t.Run("should create command with valid order id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewDeleteOrderCommand(orderID)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
	})

	t.Run("should fail with zero order id", func(t *testing.T) {
		_, err := commands.NewDeleteOrderCommand(kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value command should fail validation", func(t *testing.T) {
		var cmd commands.DeleteOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrDeleteOrderCommandIsNotConstructed, err)
	})
}
