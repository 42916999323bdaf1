package commands

import (
	"context"
	"errors"
	"fmt"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders. Every product is looked up and
// priced inside the same transaction that stores the order, so either the
// header and all lines are persisted or nothing is.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectIsUnavailable) {
//	    // some product is missing or off the menu
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates a pending order owned by the command actor.
//
// Returns:
//   - the stored order
//   - *errs.ObjectIsUnavailableError if a product does not exist or is not available
//   - any persistence error, in which case nothing was stored
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	lines := make([]*order.Line, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		p, err := productRepo.Get(ctx, item.ProductID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectIsUnavailableErrorWithCause("product", item.ProductID, err)
		}
		if err != nil {
			return nil, fmt.Errorf("load product %d: %w", item.ProductID, err)
		}
		if !p.IsAvailable() {
			return nil, errs.NewObjectIsUnavailableError("product", item.ProductID)
		}

		line, err := order.NewLine(kernel.NewUUID(), p.ID(), item.Quantity, p.Price(), item.Note)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Actor().ID, lines, now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
