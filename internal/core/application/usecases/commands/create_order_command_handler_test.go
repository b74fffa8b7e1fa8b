package commands_test

import (
	"context"
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetActive(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActiveInPreparation(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockUoW struct {
	mock.Mock
	orderRepo   *MockOrderRepository
	productRepo *MockProductRepository
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orderRepo
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.productRepo
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event order.OrderPlacedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orderRepo:   new(MockOrderRepository),
		productRepo: new(MockProductRepository),
	}
}

func activeProduct(t *testing.T, id kernel.UUID) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "Margherita", 1250)
	require.NoError(t, err)
	return p
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	newHandler := func(uow *MockUoW, publisher *MockPublisher) commands.CreateOrderCommandHandler {
		factory := FuncUoWFactory(func() commands.UoW { return uow })
		return commands.NewCreateOrderCommandHandler(factory, publisher)
	}

	t.Run("should persist order and publish placement event", func(t *testing.T) {
		productID := kernel.NewUUID()
		item, err := order.NewItem(productID, 2, "")
		require.NoError(t, err)
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), validTable(t), []order.Item{item})
		require.NoError(t, err)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(errors.New("no transaction"))
		uow.productRepo.On("Get", ctx, productID).Return(activeProduct(t, productID), nil)
		uow.orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

		publisher := new(MockPublisher)
		publisher.On("Publish", ctx, mock.AnythingOfType("order.OrderPlacedEvent")).Return(nil)

		handler := newHandler(uow, publisher)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		uow.orderRepo.AssertCalled(t, "Add", ctx, mock.AnythingOfType("*order.Order"))
		publisher.AssertCalled(t, "Publish", ctx, mock.AnythingOfType("order.OrderPlacedEvent"))

		addedOrder := uow.orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
		assert.Equal(t, order.Pending, addedOrder.Status())
		assert.True(t, addedOrder.ID().IsEqual(cmd.OrderID()))

		publishedEvent := publisher.Calls[0].Arguments.Get(1).(order.OrderPlacedEvent)
		assert.Equal(t, order.OrderPlacedEventType, publishedEvent.EventType)
		assert.Equal(t, order.OrderPlacedEventVersion, publishedEvent.EventVersion)
		assert.True(t, publishedEvent.OrderID.IsEqual(cmd.OrderID()))
		assert.Equal(t, 5, publishedEvent.TableNumber)
	})

	t.Run("should fail with not found for unknown product", func(t *testing.T) {
		productID := kernel.NewUUID()
		item, err := order.NewItem(productID, 1, "")
		require.NoError(t, err)
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), validTable(t), []order.Item{item})
		require.NoError(t, err)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		uow.productRepo.On("Get", ctx, productID).
			Return(nil, errs.NewObjectNotFoundError("product", productID.String()))

		publisher := new(MockPublisher)

		handler := newHandler(uow, publisher)
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("should fail with distinct condition for inactive product", func(t *testing.T) {
		productID := kernel.NewUUID()
		inactive, err := product.RestoreProduct(productID, "Margherita", 1250, false)
		require.NoError(t, err)

		item, err := order.NewItem(productID, 1, "")
		require.NoError(t, err)
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), validTable(t), []order.Item{item})
		require.NoError(t, err)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		uow.productRepo.On("Get", ctx, productID).Return(inactive, nil)

		publisher := new(MockPublisher)

		handler := newHandler(uow, publisher)
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		require.ErrorIs(t, err, product.ErrProductInactive)
		assert.False(t, errors.Is(err, errs.ErrObjectNotFound))
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("should propagate publish failure after commit", func(t *testing.T) {
		productID := kernel.NewUUID()
		item, err := order.NewItem(productID, 1, "")
		require.NoError(t, err)
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), validTable(t), []order.Item{item})
		require.NoError(t, err)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(errors.New("no transaction"))
		uow.productRepo.On("Get", ctx, productID).Return(activeProduct(t, productID), nil)
		uow.orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

		publisher := new(MockPublisher)
		publisher.On("Publish", ctx, mock.AnythingOfType("order.OrderPlacedEvent")).
			Return(ports.NewEventPublicationError("orders.placed", errors.New("broker unreachable")))

		handler := newHandler(uow, publisher)
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		require.ErrorIs(t, err, ports.ErrEventPublicationFailed)
		// The order was committed before the publish attempt; the failure
		// reaches the caller but the placement stands.
		uow.AssertCalled(t, "Commit", ctx)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		handler := newHandler(newMockUoW(), new(MockPublisher))

		err := handler.Handle(ctx, commands.CreateOrderCommand{})

		require.Error(t, err)
		assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, err)
	})
}
