package commands

import (
	"context"
	"errors"

	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/services"
	"cafeteria/internal/pkg/errs"
)

// TransitionOrderStatusCommandHandler moves orders along the status state
// machine.
//
// Checks run in this order: the order must exist, the actor must be allowed
// by services.OrderAccessPolicy, and the edge must exist. The write is a
// compare-and-set on the status that was read, so of two concurrent calls
// that observed the same status only one commits; the other fails with
// *errs.InvalidTransitionError.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.OrderAccessPolicy,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle returns the updated order.
//
// Returns:
//   - *errs.ObjectNotFoundError if the order does not exist
//   - *errs.ForbiddenError if the actor may not invoke the transition
//   - *errs.InvalidTransitionError if the edge does not exist or a
//     concurrent transition committed first
func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeTransition(cmd.Actor(), o, cmd.Target()); err != nil {
		return nil, err
	}

	observed := o.Status()
	if err = o.TransitionTo(cmd.Target(), now()); err != nil {
		return nil, err
	}

	err = orderRepo.UpdateStatus(ctx, o, observed)
	if errors.Is(err, errs.ErrVersionIsInvalid) {
		return nil, errs.NewInvalidTransitionErrorWithCause(observed.String(), cmd.Target().String(), err)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
