package commands_test

import (
	"errors"
	"testing"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var customer = user.Actor{ID: 3, Role: user.Student}

func newCreateOrderCommand(t *testing.T, items ...commands.OrderItem) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(customer, kernel.NewUUID(), items)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t,
		commands.OrderItem{ProductID: 1, Quantity: 2},
		commands.OrderItem{ProductID: 2, Quantity: 1, Note: "tibio"},
	)

	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Get", ctx, int64(1)).Return(storedProduct(t, 1, "Espresso", "3.00", true), nil).Once(),
		products.On("Get", ctx, int64(2)).Return(storedProduct(t, 2, "Croissant", "2.20", true), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Total().String() == "8.20" && len(o.Lines()) == 2
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, o.ID().IsEqual(cmd.OrderID()))
	assert.Equal(t, customer.ID, o.UserID())
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	assert.Equal(t, "3.00", o.Lines()[0].UnitPrice().String())
	assert.Equal(t, "tibio", o.Lines()[1].Note())
	products.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ProductUnavailable(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, commands.OrderItem{ProductID: 1, Quantity: 1})

	products := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Get", ctx, int64(1)).Return(storedProduct(t, 1, "Espresso", "3.00", false), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	o, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectIsUnavailable)
	assert.Nil(t, o)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ProductMissing(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t,
		commands.OrderItem{ProductID: 1, Quantity: 1},
		commands.OrderItem{ProductID: 99, Quantity: 1},
	)

	products := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Get", ctx, int64(1)).Return(storedProduct(t, 1, "Espresso", "3.00", true), nil).Once(),
		products.On("Get", ctx, int64(99)).Return(nil, errs.NewObjectNotFoundError("product", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectIsUnavailable)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, commands.OrderItem{ProductID: 1, Quantity: 1})

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, commands.OrderItem{ProductID: 1, Quantity: 1})

	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Get", ctx, int64(1)).Return(storedProduct(t, 1, "Espresso", "3.00", true), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, commands.OrderItem{ProductID: 1, Quantity: 1})

	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Get", ctx, int64(1)).Return(storedProduct(t, 1, "Espresso", "3.00", true), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	o, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	assert.Nil(t, o)
	uow.AssertExpectations(t)
}
