package commands_test

import (
	"strings"
	"testing"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	actor := user.Actor{ID: 3, Role: user.Student}

	t.Run("valid command", func(t *testing.T) {
		id := kernel.NewUUID()
		items := []commands.OrderItem{{ProductID: 1, Quantity: 2, Note: "sin azúcar"}}

		cmd, err := commands.NewCreateOrderCommand(actor, id, items)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, actor, cmd.Actor())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, items, cmd.Items())
	})

	t.Run("empty item list", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("joins every invalid item", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), []commands.OrderItem{
			{ProductID: 1, Quantity: 0},
			{ProductID: 0, Quantity: 1},
			{ProductID: 2, Quantity: 1, Note: strings.Repeat("x", 501)},
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "items[0].quantity")
		assert.Contains(t, err.Error(), "items[1].product_id")
		assert.Contains(t, err.Error(), "items[2].note")
	})

	t.Run("quantity above the line limit", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), []commands.OrderItem{
			{ProductID: 1, Quantity: order.MaxQuantity},
			{ProductID: 1, Quantity: 3_000_000_000},
		})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "items[1].quantity")
		assert.NotContains(t, err.Error(), "items[0]")
	})

	t.Run("anonymous actor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(user.Actor{}, kernel.NewUUID(),
			[]commands.OrderItem{{ProductID: 1, Quantity: 1}})

		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, commands.CreateOrderCommand{}.Validate())
	})
}
