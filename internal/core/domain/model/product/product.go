package product

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrProductInactive is the sentinel for products that exist but cannot be ordered.
	ErrProductInactive = errors.New("product is inactive")
)

// InactiveProductError is returned when an order references a product that
// exists on the menu but is currently flagged unavailable. It is deliberately
// distinct from a not-found condition so callers can tell "doesn't exist"
// from "exists but can't be ordered". It unwraps to ErrProductInactive.
type InactiveProductError struct {
	ProductID kernel.UUID
}

// NewInactiveProductError creates an InactiveProductError for the given product.
func NewInactiveProductError(productID kernel.UUID) *InactiveProductError {
	return &InactiveProductError{ProductID: productID}
}

// Error implements the error interface.
func (e *InactiveProductError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProductInactive, e.ProductID)
}

// Unwrap returns the sentinel error for use with errors.Is.
func (e *InactiveProductError) Unwrap() error {
	return ErrProductInactive
}

// Product represents a menu entry that guests can order.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price must be positive (stored in minor currency units)
//   - Availability is controlled through the active flag
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the menu name shown to guests
	name string

	// price is the unit price in minor currency units (cents)
	price int64

	// active controls whether the product can currently be ordered
	active bool

	// isConstructed ensures the product was created via a factory method
	isConstructed bool
}

// NewProduct creates a new Product instance with validation.
// The product starts active and orderable.
//
// Parameters:
//   - id: Unique identifier for the product (must be valid UUID)
//   - name: Menu name (must not be empty)
//   - price: Unit price in minor currency units (must be positive)
//
// Returns:
//   - *Product: the created product if all validations pass
//   - error: validation error if any parameter is invalid
func NewProduct(id kernel.UUID, name string, price int64) (*Product, error) {
	p := &Product{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persisted state,
// including its availability flag. Intended for repository implementations.
func RestoreProduct(id kernel.UUID, name string, price int64, active bool) (*Product, error) {
	p, err := NewProduct(id, name, price)
	if err != nil {
		return nil, err
	}

	p.active = active
	return p, nil
}

// Validate ensures the Product instance was properly constructed through a factory.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the menu name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price in minor currency units.
func (p *Product) Price() int64 {
	return p.price
}

// IsActive reports whether the product can currently be ordered.
func (p *Product) IsActive() bool {
	return p.active
}

// EnsureOrderable returns an error when the product cannot be ordered.
// Inactive products yield an InactiveProductError carrying the product id.
func (p *Product) EnsureOrderable() error {
	if !p.active {
		return NewInactiveProductError(p.id)
	}
	return nil
}

// Deactivate removes the product from the orderable menu.
// The product record is retained for existing orders and reports.
func (p *Product) Deactivate() {
	p.active = false
}

// Activate returns the product to the orderable menu.
func (p *Product) Activate() {
	p.active = true
}

// setID validates and sets the product's unique identifier.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the menu name.
func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setPrice validates and sets the unit price.
func (p *Product) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", price))
	}
	p.price = price
	return nil
}
