package commands_test

import (
	"testing"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/domain/model/product"
	"cafeteria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand("Espresso", "Café corto", money(t, "3.00"), product.Beverage, "", true)
	require.NoError(t, err)
	stored := storedProduct(t, 1, "Espresso", "3.00", true)

	products := new(MockProductRepository)
	uow := new(MockProductUoW)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Add", ctx, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID() == 0 && p.Name() == "Espresso" && p.Price().String() == "3.00"
		})).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateProductCommandHandler(factory)
	p, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID())
	uow.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestNewCreateProductCommand_Invalid(t *testing.T) {
	_, err := commands.NewCreateProductCommand("", "", money(t, "1.00"), product.UnknownCategory, "", true)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateProductCommandHandler_Handle(t *testing.T) {
	t.Run("applies only given fields", func(t *testing.T) {
		ctx := t.Context()
		existing := storedProduct(t, 1, "Espresso", "3.00", true)
		newPrice := money(t, "3.50")
		cmd, err := commands.NewUpdateProductCommand(1, commands.ProductChanges{Price: &newPrice})
		require.NoError(t, err)

		products := new(MockProductRepository)
		uow := new(MockProductUoW)
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ProductRepository").Return(products).Once(),
			products.On("Get", ctx, int64(1)).Return(existing, nil).Once(),
			products.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewUpdateProductCommandHandler(factory)
		p, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "3.50", p.Price().String())
		assert.Equal(t, "Espresso", p.Name())
		assert.True(t, p.IsAvailable())
	})

	t.Run("set availability", func(t *testing.T) {
		ctx := t.Context()
		existing := storedProduct(t, 1, "Espresso", "3.00", true)
		cmd, err := commands.NewSetAvailabilityCommand(1, false)
		require.NoError(t, err)

		products := new(MockProductRepository)
		uow := new(MockProductUoW)
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(products).Once()
		products.On("Get", ctx, int64(1)).Return(existing, nil).Once()
		products.On("Update", ctx, existing).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewUpdateProductCommandHandler(factory)
		p, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, p.IsAvailable())
	})

	t.Run("blank name is rejected before update", func(t *testing.T) {
		ctx := t.Context()
		existing := storedProduct(t, 1, "Espresso", "3.00", true)
		cmd, err := commands.NewUpdateProductCommand(1, commands.ProductChanges{Name: ptr("  ")})
		require.NoError(t, err)

		products := new(MockProductRepository)
		uow := new(MockProductUoW)
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(products).Once()
		products.On("Get", ctx, int64(1)).Return(existing, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewUpdateProductCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSetAvailabilityCommand(42, true)
		require.NoError(t, err)

		products := new(MockProductRepository)
		uow := new(MockProductUoW)
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(products).Once()
		products.On("Get", ctx, int64(42)).Return(nil, errs.NewObjectNotFoundError("product", int64(42))).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewUpdateProductCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("no fields is invalid input", func(t *testing.T) {
		_, err := commands.NewUpdateProductCommand(1, commands.ProductChanges{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
