package order_test

import (
	"fmt"
	"testing"

	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.InPreparation))
		assert.Equal(t, 3, int(order.Ready))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.InPreparation,
			order.Ready,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(4),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "PENDING"},
			{order.InPreparation, "IN_PREPARATION"},
			{order.Ready, "READY"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(4),
		}

		for _, status := range invalidStatuses {
			assert.Equal(t, "Unknown", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse wire names", func(t *testing.T) {
		testCases := []struct {
			name     string
			expected order.Status
		}{
			{"PENDING", order.Pending},
			{"IN_PREPARATION", order.InPreparation},
			{"READY", order.Ready},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %s", tc.name), func(t *testing.T) {
				status, err := order.StatusFromString(tc.name)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unknown and differently cased names", func(t *testing.T) {
		invalidNames := []string{"", "Unknown", "pending", "Ready", "DONE", " PENDING"}

		for _, name := range invalidNames {
			t.Run(fmt.Sprintf("should reject %q", name), func(t *testing.T) {
				_, err := order.StatusFromString(name)
				require.Error(t, err)
			})
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should allow exactly the two workflow edges", func(t *testing.T) {
		// The full 3x3 table over the valid statuses. Only two pairs are
		// legal; the seven others - self-loops included - must be rejected.
		statuses := []order.Status{order.Pending, order.InPreparation, order.Ready}
		allowed := map[order.Status]order.Status{
			order.Pending:       order.InPreparation,
			order.InPreparation: order.Ready,
		}

		for _, from := range statuses {
			for _, to := range statuses {
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					expected := allowed[from] == to
					assert.Equal(t, expected, from.CanTransitionTo(to))
				})
			}
		}
	})

	t.Run("should reject any pair involving Unknown", func(t *testing.T) {
		for _, valid := range []order.Status{order.Pending, order.InPreparation, order.Ready} {
			assert.False(t, order.Unknown.CanTransitionTo(valid))
			assert.False(t, valid.CanTransitionTo(order.Unknown))
		}
		assert.False(t, order.Unknown.CanTransitionTo(order.Unknown))
	})

	t.Run("should reject edges from the terminal status", func(t *testing.T) {
		for _, to := range []order.Status{order.Pending, order.InPreparation, order.Ready} {
			assert.False(t, order.Ready.CanTransitionTo(to))
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should perform legal transitions", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.InPreparation)
		require.NoError(t, err)
		assert.Equal(t, order.InPreparation, next)

		next, err = order.InPreparation.TransitionTo(order.Ready)
		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)
	})

	t.Run("should reject illegal transitions with the attempted pair", func(t *testing.T) {
		testCases := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Pending, order.Pending},
			{order.Pending, order.Ready},
			{order.InPreparation, order.Pending},
			{order.InPreparation, order.InPreparation},
			{order.Ready, order.Pending},
			{order.Ready, order.InPreparation},
			{order.Ready, order.Ready},
			{order.Unknown, order.Pending},
			{order.Pending, order.Unknown},
			{order.Unknown, order.Unknown},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				next, err := tc.from.TransitionTo(tc.to)

				require.Error(t, err)
				assert.Equal(t, order.Unknown, next)
				require.ErrorIs(t, err, order.ErrInvalidStatusTransition)

				var transitionErr *order.InvalidStatusTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, tc.from, transitionErr.From)
				assert.Equal(t, tc.to, transitionErr.To)
			})
		}
	})
}
