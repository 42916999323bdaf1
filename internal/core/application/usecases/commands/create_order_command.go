package commands

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItem is one requested line of a new order.
type OrderItem struct {
	ProductID int64
	Quantity  int
	Note      string
}

// CreateOrderCommand represents a request to place an order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, kernel.NewUUID(), []OrderItem{
//	    {ProductID: espressoID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.UUID
	items   []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the actor, the new order id and every item.
// All failures are joined into one error.
func NewCreateOrderCommand(actor user.Actor, orderID kernel.UUID, items []OrderItem) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() user.Actor {
	return c.actor
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns a copy of the requested items.
func (c CreateOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var itemErrs []error
	for i, item := range items {
		if item.ProductID <= 0 {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].product_id", i), fmt.Errorf("%d is not greater than 0", item.ProductID)))
		}
		if item.Quantity < 1 {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i), fmt.Errorf("%d is less than 1", item.Quantity)))
		}
		if item.Quantity > order.MaxQuantity {
			itemErrs = append(itemErrs, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("items[%d].quantity", i), item.Quantity, 1, order.MaxQuantity))
		}
		if n := utf8.RuneCountInString(item.Note); n > order.MaxNoteLength {
			itemErrs = append(itemErrs, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("items[%d].note length", i), n, 0, order.MaxNoteLength))
		}
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}
