package services

import (
	"errors"
	"fmt"

	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"
)

// OrderAccessPolicy decides what an actor may do with orders.
//
// Business rules:
//   - Administrators may view, list and transition any order
//   - Other users may view and list only their own orders
//   - Other users may only cancel, and only their own orders
//
// The policy does not check the state machine. Callers authorize first and
// then ask the order to transition, so an unauthorized caller learns nothing
// about the current status.
//
// Example usage:
//
//	policy := services.NewOrderAccessPolicy()
//	if err := policy.AuthorizeTransition(actor, o, order.Cancelled); err != nil {
//	    return err // *errs.ForbiddenError
//	}
//	if err := o.TransitionTo(order.Cancelled, now); err != nil {
//	    return err // *errs.InvalidTransitionError
//	}
type OrderAccessPolicy struct{}

func NewOrderAccessPolicy() OrderAccessPolicy {
	return OrderAccessPolicy{}
}

// AuthorizeTransition returns a ForbiddenError unless actor may move o to target.
func (OrderAccessPolicy) AuthorizeTransition(actor user.Actor, o *order.Order, target order.Status) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if actor.IsAdmin() {
		return nil
	}
	if !o.IsOwnedBy(actor.ID) {
		return errs.NewForbiddenErrorWithCause("transition order",
			fmt.Errorf("order %s belongs to another user", o.ID()))
	}
	if target != order.Cancelled {
		return errs.NewForbiddenErrorWithCause("transition order",
			fmt.Errorf("only staff may set status %s", target))
	}
	return nil
}

// AuthorizeView returns a ForbiddenError unless actor may read o.
func (p OrderAccessPolicy) AuthorizeView(actor user.Actor, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return p.AuthorizeViewOwnedBy(actor, o.UserID())
}

// AuthorizeViewOwnedBy is AuthorizeView for read models that only carry the
// owner id.
func (OrderAccessPolicy) AuthorizeViewOwnedBy(actor user.Actor, ownerID int64) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsAdmin() || actor.ID == ownerID {
		return nil
	}
	return errs.NewForbiddenErrorWithCause("view order", errors.New("order belongs to another user"))
}

// ListScope returns the owner every listed order must belong to, or nil when
// actor may list all orders.
func (OrderAccessPolicy) ListScope(actor user.Actor) (*int64, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return nil, nil
	}
	owner := actor.ID
	return &owner, nil
}
