package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const (
	// TableNumberMin is the lowest table number in the dining room.
	TableNumberMin = 1
	// TableNumberMax is the highest table number in the dining room.
	TableNumberMax = 12
)

// ErrTableNumberIsNotConstructed is returned when attempting to use an improperly
// initialized TableNumber. Table numbers must be created via NewTableNumber.
var ErrTableNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"table number must be created via NewTableNumber constructor")

// TableNumber identifies a physical table in the dining room.
// It is an immutable value object that guarantees the number lies within
// [TableNumberMin..TableNumberMax]. The zero value is invalid and fails
// validation - use the constructor to create instances.
//
// Example:
//
//	table, err := kernel.NewTableNumber(5)
//	if err != nil {
//	    // handle out-of-range table
//	}
//	fmt.Printf("Table %d", table.Value())
type TableNumber struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewTableNumber creates a TableNumber after checking the dining-room bounds.
//
// Parameters:
//   - value: the table number (must be between TableNumberMin and TableNumberMax inclusive)
//
// Returns:
//   - TableNumber: a valid table number instance
//   - error: ValueIsOutOfRangeError if the number is outside the dining room
func NewTableNumber(value int) (TableNumber, error) {
	if value < TableNumberMin || value > TableNumberMax {
		return TableNumber{}, errs.NewValueIsOutOfRangeError(
			"tableNumber", value, TableNumberMin, TableNumberMax)
	}

	return TableNumber{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the TableNumber was created through its constructor.
// The zero value fails with ErrTableNumberIsNotConstructed.
func (t TableNumber) Validate() error {
	return t.guard.Validate(ErrTableNumberIsNotConstructed)
}

// Value returns the table number.
// Guaranteed to be within bounds for properly constructed instances.
func (t TableNumber) Value() int {
	return t.value
}

// IsEqual compares two table numbers by value.
func (t TableNumber) IsEqual(other TableNumber) bool {
	return t.value == other.value
}

// String returns the table number formatted for logs and messages.
func (t TableNumber) String() string {
	return fmt.Sprintf("Table(%d)", t.value)
}
