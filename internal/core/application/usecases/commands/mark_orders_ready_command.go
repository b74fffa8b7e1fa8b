package commands

import (
	"errors"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrMarkOrdersReadyCommandIsNotConstructed = errors.New(
	"MarkOrdersReadyCommand must be created via NewMarkOrdersReadyCommand constructor",
)

// MarkOrdersReadyCommand represents the kitchen sweep: orders that entered
// preparation at or before the cutoff are considered done and moved to Ready.
type MarkOrdersReadyCommand struct { //nolint:recvcheck //using for validation
	preparedBefore time.Time

	guard guard.ConstructorGuard
}

// NewMarkOrdersReadyCommand creates a command to finish preparations that
// started at or before the given cutoff.
func NewMarkOrdersReadyCommand(preparedBefore time.Time) (MarkOrdersReadyCommand, error) {
	if preparedBefore.IsZero() {
		return MarkOrdersReadyCommand{}, errs.NewValueIsRequiredError("preparedBefore")
	}

	return MarkOrdersReadyCommand{
		preparedBefore: preparedBefore,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkOrdersReadyCommandIsNotConstructed if validation fails.
func (c MarkOrdersReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrdersReadyCommandIsNotConstructed)
}

// PreparedBefore returns the cutoff: orders whose preparation started at or
// before this instant are marked ready.
func (c MarkOrdersReadyCommand) PreparedBefore() time.Time {
	return c.preparedBefore
}
