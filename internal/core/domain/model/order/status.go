package order

import (
	"errors"
	"fmt"
)

// ErrInvalidStatusTransition is the sentinel for illegal order status changes.
// Use errors.Is to detect it regardless of the attempted edge.
var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order in the kitchen workflow.
// It implements a state machine with defined transitions to ensure
// orders follow the correct preparation flow.
//
// State transitions:
//
//	Pending ──> InPreparation ──> Ready
//
// Ready is terminal: no transition leaves it. No self-transitions,
// reverse edges, or skip edges are allowed.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Orders in this status are waiting for the kitchen to pick them up.
	Pending

	// InPreparation indicates the kitchen is working on the order.
	InPreparation

	// Ready indicates the order is prepared and can be served.
	// This is a final state with no further transitions allowed.
	Ready
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
	}
}

// InvalidStatusTransitionError describes a rejected status change,
// carrying the attempted (from, to) pair for diagnostics.
// It unwraps to ErrInvalidStatusTransition.
type InvalidStatusTransitionError struct {
	From Status
	To   Status
}

// NewInvalidStatusTransitionError creates an error for the attempted edge.
func NewInvalidStatusTransitionError(from Status, to Status) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to}
}

// Error implements the error interface.
func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidStatusTransition, e.From, e.To)
}

// Unwrap returns the sentinel error for use with errors.Is.
func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InPreparation, Ready.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method ensures Status values from external sources
// (database, API, message payloads) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return NewInvalidStatusTransitionError(s, s)
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns:
//   - "PENDING", "IN_PREPARATION", or "READY" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its wire name.
// The comparison is exact; unknown names yield an error.
//
// Example:
//
//	status, err := order.StatusFromString("IN_PREPARATION")
//	if err != nil {
//	    // reject the request
//	}
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%q is not a valid order status", s)
}

// CanTransitionTo reports whether the status change s -> next is legal.
//
// The only legal edges are:
//   - Pending -> InPreparation
//   - InPreparation -> Ready
//
// Every other pair is illegal: self-transitions (even for non-terminal
// states), reverse edges, skip edges, any edge leaving Ready, and any
// pair involving an Unknown or otherwise invalid status.
//
// The check is pure: it depends on nothing but the two status values,
// which makes the full 3x3 transition table exhaustively testable.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}

	switch s {
	case Pending:
		return next == InPreparation
	case InPreparation:
		return next == Ready
	default:
		// Ready is terminal.
		return false
	}
}

// TransitionTo validates and performs the status change s -> next.
//
// This is the sole gate for all status mutation: the application layer
// must never assign a status without passing through it.
//
// Returns:
//   - (next, nil) when the edge is legal
//   - (Unknown, *InvalidStatusTransitionError) carrying the attempted pair otherwise
//
// Example:
//
//	newStatus, err := current.TransitionTo(order.Ready)
//	if err != nil {
//	    // surface as a conflict to the caller
//	}
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, NewInvalidStatusTransitionError(s, next)
	}

	return next, nil
}
