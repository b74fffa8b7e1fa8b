// Package product provides the menu side of the restaurant domain.
//
// The package includes:
//   - Product: A menu entry with price and an availability flag
//   - InactiveProductError: Raised when ordering a product that exists but is unavailable
//
// Availability is a soft switch: deactivated products stay on record for
// existing orders and sales reports but cannot appear in new orders.
package product
