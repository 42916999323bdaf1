// Package ports defines the contracts between the cafeteria core and its
// infrastructure: repositories, the unit of work, password hashing and mail.
package ports

import (
	"context"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order header and all of its lines.
	// The header is written before the lines so a failing line leaves the
	// transaction to be rolled back by the caller.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists the status and update time of aggregate only if the
	// stored status still equals expected.
	//
	// Returns *errs.VersionIsInvalidError when another writer changed the
	// status first, and *errs.ObjectNotFoundError when the order is gone.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order with its lines ordered by position.
	// Returns *errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
