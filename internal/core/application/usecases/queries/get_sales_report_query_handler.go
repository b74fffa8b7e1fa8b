package queries

import (
	"context"
	"database/sql"
	"fmt"

	"restaurant/internal/core/domain/model/order"
)

// GetSalesReportQueryHandler builds the sales summary for the reporting
// service. It runs on a plain database/sql connection so the reporting
// binary stays read-only and does not pull in the write-side ORM.
//
// Example:
//
//	db, err := sql.Open("postgres", dsn)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetSalesReportQueryHandler(db)
//
//	query, err := NewGetSalesReportQuery(nil, nil)
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, query)
type GetSalesReportQueryHandler struct {
	db *sql.DB
}

// NewGetSalesReportQueryHandler creates a handler for sales summaries.
func NewGetSalesReportQueryHandler(db *sql.DB) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{db: db}
}

// Handle executes the summary queries. The per-status breakdown is sorted by
// workflow order and includes soft-deleted orders; the sales totals cover
// completed orders only.
func (h GetSalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetSalesReportQuery,
) (GetSalesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	rangeClause, rangeArgs := createdInRange("o.created_at", query, 1)
	salesRangeClause, _ := createdInRange("o.created_at", query, 2)

	var response GetSalesReportQueryResponse

	rows, err := h.db.QueryContext(ctx, `
		SELECT o.status, COUNT(*)
		FROM orders o
		WHERE true`+rangeClause+`
		GROUP BY o.status
		ORDER BY o.status
	`, rangeArgs...)
	if err != nil {
		return GetSalesReportQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetSalesReportQueryResponse{}, err
		}

		response.StatusCounts = append(response.StatusCounts, StatusCount{
			Status: order.Status(status).String(),
			Count:  count,
		})
		response.TotalOrders += count
	}
	if err = rows.Err(); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	err = h.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM orders o
		WHERE o.deleted = true`+rangeClause+`
	`, rangeArgs...).Scan(&response.DeletedOrders)
	if err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	salesArgs := append([]any{int(order.Ready)}, rangeArgs...)
	err = h.db.QueryRowContext(ctx, `
		SELECT
			COUNT(DISTINCT o.id),
			COALESCE(SUM(i.quantity), 0),
			COALESCE(SUM(i.quantity * p.price), 0)
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		JOIN products p ON p.id = i.product_id
		WHERE o.deleted = false AND o.status = $1`+salesRangeClause+`
	`, salesArgs...).Scan(&response.CompletedOrders, &response.TotalItems, &response.Revenue)
	if err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	return response, nil
}

// createdInRange renders the optional time range as extra AND predicates.
// Placeholder numbering starts at next, continuing whatever the statement
// already binds.
func createdInRange(column string, query GetSalesReportQuery, next int) (string, []any) {
	clause := ""
	args := make([]any, 0, 2)

	if query.From() != nil {
		args = append(args, *query.From())
		clause += fmt.Sprintf(" AND %s >= $%d", column, next)
		next++
	}
	if query.To() != nil {
		args = append(args, *query.To())
		clause += fmt.Sprintf(" AND %s < $%d", column, next)
	}

	return clause, args
}
