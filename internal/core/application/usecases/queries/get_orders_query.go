// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the domain
// aggregates used by commands.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves active orders, optionally narrowed to a set of
// workflow statuses. An empty set is the same request as "all active
// orders": soft-deleted orders are invisible either way.
//
// Example:
//
//	query, err := NewGetOrdersQuery([]string{"PENDING", "READY"})
//	if err != nil {
//	    return err // unknown status label
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for active orders. The filter is the raw
// status labels from the caller: a nil or empty slice means no filter, every
// element must be one of the known workflow labels or the constructor fails.
// Duplicate labels are collapsed.
func NewGetOrdersQuery(statusFilters []string) (GetOrdersQuery, error) {
	query := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	seen := make(map[order.Status]bool, len(statusFilters))
	for _, label := range statusFilters {
		status, err := order.StatusFromString(label)
		if err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}

		if seen[status] {
			continue
		}
		seen[status] = true
		query.statuses = append(query.statuses, status)
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// HasStatusFilter reports whether the query narrows results by status.
func (q GetOrdersQuery) HasStatusFilter() bool {
	return len(q.statuses) > 0
}

// Statuses returns the status filter set. Empty when no filter applies.
func (q GetOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// OrderItemResponse represents one line of an order in query results.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	Note      string
}

// GetOrdersQueryResponse represents one active order in query results.
//
// Example:
//
//	for _, o := range orders {
//	    fmt.Printf("table %d: %s (%d items)\n", o.TableNumber, o.Status, len(o.Items))
//	}
type GetOrdersQueryResponse struct {
	ID          kernel.UUID
	TableNumber int
	Status      string
	Items       []OrderItemResponse
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
