// Package order provides domain entities and business logic for order management
// in the restaurant system. It implements the Order aggregate root with lifecycle
// management, state transitions, and soft-delete visibility.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Item: A value object for a single ordered line (product, quantity, note)
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, table number, and at least one item
//   - Order status follows a fixed workflow: Pending -> InPreparation -> Ready
//   - Ready is terminal; no transition may leave it
//   - Soft deletion hides an order from default queries without touching its status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
