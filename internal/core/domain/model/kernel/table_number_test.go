package kernel_test

import (
	"fmt"
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableNumber(t *testing.T) {
	t.Run("should create table numbers within bounds", func(t *testing.T) {
		for value := kernel.TableNumberMin; value <= kernel.TableNumberMax; value++ {
			t.Run(fmt.Sprintf("should accept table %d", value), func(t *testing.T) {
				table, err := kernel.NewTableNumber(value)

				require.NoError(t, err)
				assert.Equal(t, value, table.Value())
				require.NoError(t, table.Validate())
			})
		}
	})

	t.Run("should reject table numbers outside bounds", func(t *testing.T) {
		invalidValues := []int{0, -1, -12, kernel.TableNumberMax + 1, 100}

		for _, value := range invalidValues {
			t.Run(fmt.Sprintf("should reject table %d", value), func(t *testing.T) {
				_, err := kernel.NewTableNumber(value)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestTableNumber_Validate(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var table kernel.TableNumber

		err := table.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrTableNumberIsNotConstructed, err)
	})
}

func TestTableNumber_IsEqual(t *testing.T) {
	t.Run("should compare by value", func(t *testing.T) {
		table1, err := kernel.NewTableNumber(5)
		require.NoError(t, err)
		table2, err := kernel.NewTableNumber(5)
		require.NoError(t, err)
		table3, err := kernel.NewTableNumber(7)
		require.NoError(t, err)

		assert.True(t, table1.IsEqual(table2))
		assert.False(t, table1.IsEqual(table3))
	})
}

func TestTableNumber_String(t *testing.T) {
	t.Run("should format with value", func(t *testing.T) {
		table, err := kernel.NewTableNumber(12)
		require.NoError(t, err)

		assert.Equal(t, "Table(12)", table.String())
	})
}
