package order

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderItemsAreRequired is returned when an order is created without line items.
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("order must contain at least one item")
)

// Order represents a placed order in the system. It is the aggregate root that manages
// the order lifecycle from placement through preparation to readiness, and its
// soft-delete visibility.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and table number
//   - Must contain at least one line item
//   - Status transitions follow the kitchen workflow (see Status)
//   - Soft deletion hides the order from default queries but never changes its status
//   - deletedAt never decreases under repeated deletion marks
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tableNumber is the dining-room table the order was placed from
	tableNumber kernel.TableNumber

	// status represents the current state in the kitchen workflow
	status Status

	// items are the ordered lines, in the order the guest placed them
	items []Item

	// createdAt is when the order was placed
	createdAt time.Time

	// updatedAt is refreshed on every status change
	updatedAt time.Time

	// deleted hides the order from default queries when true
	deleted bool

	// deletedAt records the most recent deletion mark (nil while active)
	deletedAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way to
// place a valid order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - tableNumber: Validated dining-room table
//   - items: Ordered line items (must not be empty, each must be valid)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	orderID := kernel.NewUUID()
//	table, _ := kernel.NewTableNumber(5)
//	item, _ := order.NewItem(productID, 2, "no onions")
//	placed, err := order.NewOrder(orderID, table, []order.Item{item})
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs and creates the order in Pending
// status, not deleted, with creation and update timestamps set to now.
func NewOrder(id kernel.UUID, tableNumber kernel.TableNumber, items []Item) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTableNumber(tableNumber),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state.
//
// Unlike NewOrder it accepts the full persisted field set, including the
// soft-delete mark, and validates the stored status. It is intended for
// repository implementations only; business code must place orders through
// NewOrder.
func RestoreOrder(
	id kernel.UUID,
	tableNumber kernel.TableNumber,
	items []Item,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	deleted bool,
	deletedAt *time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deleted:       deleted,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTableNumber(tableNumber),
		order.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = status
	if deletedAt != nil {
		at := deletedAt.UTC()
		order.deletedAt = &at
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a factory method
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableNumber returns the table the order was placed from.
func (o *Order) TableNumber() kernel.TableNumber {
	return o.tableNumber
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the ordered lines in placement order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order status last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsDeleted reports whether the order has been soft-deleted.
// Soft-deleted orders keep their status and items for auditing but are
// excluded from every default query.
func (o *Order) IsDeleted() bool {
	return o.deleted
}

// DeletedAt returns when the order was last marked deleted, or nil while active.
func (o *Order) DeletedAt() *time.Time {
	if o.deletedAt == nil {
		return nil
	}
	at := *o.deletedAt
	return &at
}

// ChangeStatus moves the order along the kitchen workflow.
//
// The requested status is checked against the transition table via
// Status.TransitionTo; on failure the order is left unmodified and the
// transition error propagates. On success the status is assigned and the
// update timestamp refreshed.
//
// Example:
//
//	if err := placed.ChangeStatus(order.InPreparation); err != nil {
//	    // illegal edge, order unchanged
//	}
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// MarkDeleted soft-deletes the order.
//
// The deleted flag is set and deletedAt advances to now; calling it again
// is safe and only moves the timestamp forward (never backward). The
// status and items are untouched - soft deletion is an audit-preserving
// visibility change, not erasure. Whether a repeated deletion is reported
// to callers as not-found is an application-layer concern.
func (o *Order) MarkDeleted() {
	now := time.Now().UTC()
	if o.deletedAt != nil && now.Before(*o.deletedAt) {
		now = *o.deletedAt
	}

	o.deleted = true
	o.deletedAt = &now
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTableNumber validates and sets the order's table.
// This is a private method used only during construction.
func (o *Order) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}
	o.tableNumber = tableNumber
	return nil
}

// setItems validates and sets the ordered lines.
// At least one valid item is required.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
