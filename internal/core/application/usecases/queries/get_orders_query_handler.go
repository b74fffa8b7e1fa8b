package queries

import (
	"context"
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves active orders from the database.
// Soft-deleted orders never appear in results regardless of the filter.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns active orders with their items.
// Results are sorted by creation time with the order id as a tie breaker,
// so listings stay stable between calls.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			o.id,
			o.table_number,
			o.status,
			o.created_at,
			o.updated_at,
			i.product_id,
			i.quantity,
			i.note
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.deleted = false
	`
	const ordering = ` ORDER BY o.created_at, o.id, i.line_no`

	var rows *sql.Rows
	var err error
	if query.HasStatusFilter() {
		statuses := make([]int, 0, len(query.Statuses()))
		for _, status := range query.Statuses() {
			statuses = append(statuses, int(status))
		}
		rows, err = h.db.WithContext(ctx).
			Raw(baseQuery+` AND o.status IN (?)`+ordering, statuses).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(baseQuery + ordering).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			tableNum  int
			status    int
			createdAt time.Time
			updatedAt time.Time
			productID uuid.UUID
			quantity  int
			note      sql.NullString
		)

		if err = rows.Scan(&id, &tableNum, &status, &createdAt, &updatedAt,
			&productID, &quantity, &note); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		// Rows arrive grouped by order; a new id starts the next response.
		if len(orders) == 0 || !orders[len(orders)-1].ID.IsEqual(orderID) {
			orders = append(orders, GetOrdersQueryResponse{
				ID:          orderID,
				TableNumber: tableNum,
				Status:      order.Status(status).String(),
				CreatedAt:   createdAt,
				UpdatedAt:   updatedAt,
			})
		}

		last := &orders[len(orders)-1]
		last.Items = append(last.Items, OrderItemResponse{
			ProductID: itemProductID,
			Quantity:  quantity,
			Note:      note.String,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
