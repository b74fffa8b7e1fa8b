package queries

import (
	"context"
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single active order from the database.
// An id that belongs to a soft-deleted order reports ObjectNotFoundError,
// exactly like an id that was never issued.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup and returns the order with its items.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE o.deleted = false AND o.id = ?
		ORDER BY i.line_no
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	var response GetOrdersQueryResponse
	found := false
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
			return GetOrdersQueryResponse{}, err
		}

		if !found {
			orderID, idErr := kernel.UUIDFromBytes(id[:])
			if idErr != nil {
				return GetOrdersQueryResponse{}, idErr
			}

			response = GetOrdersQueryResponse{
				ID:          orderID,
				TableNumber: tableNum,
				Status:      order.Status(status).String(),
				CreatedAt:   createdAt,
				UpdatedAt:   updatedAt,
			}
			found = true
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return GetOrdersQueryResponse{}, idErr
		}

		response.Items = append(response.Items, OrderItemResponse{
			ProductID: itemProductID,
			Quantity:  quantity,
			Note:      note.String,
		})
	}

	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	if !found {
		return GetOrdersQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return response, nil
}
