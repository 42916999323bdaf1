package queries

import (
	"errors"
	"strings"

	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders visible to an actor, optionally filtered
// by status.
//
// Example:
//
//	query, err := NewListOrdersQuery(actor, "pending")
//	if err != nil {
//	    return err // unknown status
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	actor  user.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery parses statusFilter; an empty filter lists every status.
func NewListOrdersQuery(actor user.Actor, statusFilter string) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	query := ListOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(statusFilter) != "" {
		status, err := order.ParseStatus(statusFilter)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		query.status = &status
	}

	return query, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() user.Actor {
	return q.actor
}

// Status returns the filter and whether one is set.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}
