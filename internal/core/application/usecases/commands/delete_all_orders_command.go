package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrDeleteAllOrdersCommandIsNotConstructed = errors.New(
	"DeleteAllOrdersCommand must be created via NewDeleteAllOrdersCommand constructor",
)

// DeleteAllOrdersCommand represents a request to soft-delete every active order.
// This is a parameterless command used to clear the board between shifts.
type DeleteAllOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewDeleteAllOrdersCommand creates a command to soft-delete all active orders.
func NewDeleteAllOrdersCommand() DeleteAllOrdersCommand {
	return DeleteAllOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteAllOrdersCommandIsNotConstructed if validation fails.
func (c DeleteAllOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAllOrdersCommandIsNotConstructed)
}
