package queries

import (
	"errors"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetSalesReportQueryIsNotConstructed = errors.New(
	"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
)

// GetSalesReportQuery summarizes orders placed within an optional time range.
// Both bounds are optional; a nil bound leaves that side open. Soft-deleted
// orders are part of the per-status breakdown: deletion hides an order from
// the live board but the record is retained for exactly this kind of
// accounting. The sales totals themselves only count completed orders.
type GetSalesReportQuery struct {
	from  *time.Time
	to    *time.Time
	guard guard.ConstructorGuard
}

// NewGetSalesReportQuery creates a query for the sales summary.
// Returns a ValueIsInvalidError when both bounds are set and the range is
// inverted.
func NewGetSalesReportQuery(from, to *time.Time) (GetSalesReportQuery, error) {
	if from != nil && to != nil && to.Before(*from) {
		return GetSalesReportQuery{}, errs.NewValueIsInvalidErrorWithCause("to",
			errors.New("range end is before range start"))
	}

	return GetSalesReportQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// From returns the inclusive lower bound, or nil when open.
func (q GetSalesReportQuery) From() *time.Time {
	return q.from
}

// To returns the exclusive upper bound, or nil when open.
func (q GetSalesReportQuery) To() *time.Time {
	return q.to
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSalesReportQueryIsNotConstructed if validation fails.
func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

// StatusCount is one row of the per-status breakdown.
type StatusCount struct {
	Status string
	Count  int
}

// GetSalesReportQueryResponse represents the sales summary.
//
// TotalOrders, DeletedOrders and StatusCounts cover every order placed in the
// range, soft-deleted ones included. CompletedOrders, TotalItems and Revenue
// cover only orders that reached READY and were not deleted. Revenue is in
// minor currency units, priced at the products' current prices.
type GetSalesReportQueryResponse struct {
	TotalOrders     int
	DeletedOrders   int
	StatusCounts    []StatusCount
	CompletedOrders int
	TotalItems      int
	Revenue         int64
}
