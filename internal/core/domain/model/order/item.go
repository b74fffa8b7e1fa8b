package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of an order: a product, how many of it, and an
// optional free-text note for the kitchen ("no onions").
//
// Item is an immutable value object. The zero value is invalid and must
// be created through NewItem.
type Item struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	note      string

	guard guard.ConstructorGuard
}

// NewItem creates an order line after validating its parts.
//
// Parameters:
//   - productID: the ordered product (must be a valid UUID)
//   - quantity: how many units (must be greater than 0)
//   - note: optional preparation note, may be empty
//
// Returns:
//   - Item: a valid order line
//   - error: validation error if the product id or quantity is invalid
func NewItem(productID kernel.UUID, quantity int, note string) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.note = note
	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the ordered product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns how many units of the product were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Note returns the optional kitchen note. Empty when none was given.
func (i Item) Note() string {
	return i.note
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
