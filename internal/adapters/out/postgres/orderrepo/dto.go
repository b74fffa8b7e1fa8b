// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository side of the order aggregate,
// converting between domain entities and their relational representation.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Soft deletion is modeled with an explicit deleted flag plus timestamp so
// that "active" reads are an ordinary predicate rather than driver magic,
// and deleted rows stay queryable for reporting.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TableNumber int            `gorm:"type:smallint;not null"`
	Status      int            `gorm:"type:smallint;not null;index"`
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	Deleted     bool           `gorm:"not null;default:false;index"`
	DeletedAt   *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line of an order. Lines have no identity of
// their own, so the primary key is the owning order plus the line position.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNo    int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"type:int;not null"`
	Note      string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Line numbers are assigned from item positions, which keeps listing order
// stable across round trips.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			LineNo:    i,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			Note:      item.Note(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		TableNumber: aggregate.TableNumber().Value(),
		Status:      int(aggregate.Status()),
		Items:       items,
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Deleted:     aggregate.IsDeleted(),
		DeletedAt:   aggregate.DeletedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including soft-deletion state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableNumber, err := kernel.NewTableNumber(dto.TableNumber)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Quantity, itemDTO.Note)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		tableNumber,
		items,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Deleted,
		dto.DeletedAt,
	)
}
