// Package http implements the inbound HTTP adapter of the order service.
package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the generated ServerInterface. It translates HTTP
// requests into commands and queries and query responses back into API
// types; domain errors travel up unchanged and the error handler maps them
// to status codes.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	deleteAllOrdersHandler   commands.DeleteAllOrdersCommandHandler

	// Query handlers
	getOrdersHandler    queries.GetOrdersQueryHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler
	getMenuHandler      queries.GetMenuQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	deleteAllOrdersHandler commands.DeleteAllOrdersCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		deleteAllOrdersHandler:   deleteAllOrdersHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getMenuHandler:           getMenuHandler,
	}
}

// GetMenu handles GET /menu and returns the orderable products.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return err
	}

	response := make([]servers.MenuItem, len(menu))
	for i, item := range menu {
		response[i] = servers.MenuItem{
			Id:    item.ID.Bytes(),
			Name:  item.Name,
			Price: item.Price,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /orders and places a new order. The order id is
// generated here, not taken from the client.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidError("request body")
	}

	tableNumber, err := kernel.NewTableNumber(body.TableNumber)
	if err != nil {
		return err
	}

	items := make([]order.Item, 0, len(body.Items))
	for _, line := range body.Items {
		productID, idErr := kernel.UUIDFromBytes(line.ProductId[:])
		if idErr != nil {
			return errs.NewValueIsInvalidErrorWithCause("productId", idErr)
		}

		note := ""
		if line.Note != nil {
			note = *line.Note
		}

		item, itemErr := order.NewItem(productID, line.Quantity, note)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, tableNumber, items)
	if err != nil {
		return err
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// GetOrders handles GET /orders and lists active orders, optionally filtered
// by one or more statuses. An absent filter lists everything active.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var statusFilters []string
	if params.Status != nil {
		statusFilters = make([]string, 0, len(*params.Status))
		for _, status := range *params.Status {
			statusFilters = append(statusFilters, string(status))
		}
	}

	query, err := queries.NewGetOrdersQuery(statusFilters)
	if err != nil {
		return err
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toAPIOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderById handles GET /orders/{orderId}.
func (s *Server) GetOrderById(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// UpdateOrderStatus handles PATCH /orders/{orderId}/status and moves the
// order along the kitchen workflow.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	var body servers.UpdateOrderStatus
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidError("request body")
	}

	status, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return err
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// DeleteOrder handles DELETE /orders/{orderId}. Deleting an unknown or
// already deleted order reports 404.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAllOrders handles DELETE /orders and soft-deletes every active order.
func (s *Server) DeleteAllOrders(ctx echo.Context) error {
	deleted, err := s.deleteAllOrdersHandler.Handle(
		ctx.Request().Context(),
		commands.NewDeleteAllOrdersCommand(),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.DeletedCount{Deleted: deleted})
}

// respondWithOrder loads one active order through the query side and writes
// it with the given status code.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID, code int) error {
	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return err
	}

	response, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(code, toAPIOrder(response))
}

func toAPIOrder(o queries.GetOrdersQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			Quantity:  item.Quantity,
		}
		if item.Note != "" {
			note := item.Note
			items[i].Note = &note
		}
	}

	return servers.Order{
		Id:          o.ID.Bytes(),
		TableNumber: o.TableNumber,
		Status:      servers.OrderStatus(o.Status),
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
