package order

import (
	"errors"
	"fmt"
	"time"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of an order placed at the cafeteria.
//
// Order follows these invariants:
//   - Has a valid identifier and a positive owner id
//   - Has at least one line
//   - total equals the sum of line subtotals at creation and is never recomputed
//   - updatedAt is never before createdAt
//   - Status changes only through TransitionTo
type Order struct {
	id     kernel.UUID
	userID int64
	status Status
	total  kernel.Money
	lines  []*Line

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a pending order owned by userID from already priced lines.
// Lines are numbered in the given order and the total is computed from them.
//
// Parameters:
//   - id: identifier of the new order
//   - userID: owner of the order
//   - lines: at least one line built with NewLine
//   - now: creation time, also used as the initial update time
//
// Returns:
//   - *Order in Pending status with createdAt == updatedAt
//   - error joining every validation failure
//
// Example:
//
//	price, _ := kernel.MoneyFromString("3.00")
//	line, _ := order.NewLine(kernel.NewUUID(), espressoID, 2, price, "")
//	o, err := order.NewOrder(kernel.NewUUID(), userID, []*order.Line{line}, time.Now())
//	// o.Total().String() == "6.00"
func NewOrder(id kernel.UUID, userID int64, lines []*Line, now time.Time) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for i, line := range order.lines {
		line.position = i
		total = total.Add(line.Subtotal())
	}
	if _, err := kernel.NewMoney(total.Decimal()); err != nil {
		return nil, fmt.Errorf("order total: %w", err)
	}
	order.total = total

	return order, nil
}

// RestoreOrder rebuilds a persisted order. The stored total is kept as is so
// later catalog price changes never affect it.
func RestoreOrder(
	id kernel.UUID,
	userID int64,
	status Status,
	total kernel.Money,
	lines []*Line,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setStatus(status),
		order.setTotal(total),
		order.setRestoredLines(lines),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owner of the order.
func (o *Order) UserID() int64 {
	return o.userID
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID int64) bool {
	return o.userID == userID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Total() kernel.Money {
	return o.total
}

// Lines returns a copy of the line slice ordered by position.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo moves the order along the state machine and refreshes updatedAt.
//
// Returns:
//   - nil on success
//   - InvalidTransitionError if the edge does not exist
//   - ValueIsInvalidError if target is not a valid status
//
// The order is left untouched on error.
func (o *Order) TransitionTo(target Status, now time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	if now.Before(o.createdAt) {
		now = o.createdAt
	}
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user_id", fmt.Errorf("%d is not greater than 0", userID))
	}
	o.userID = userID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	o.lines = make([]*Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setRestoredLines(lines []*Line) error {
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	o.lines = make([]*Line, len(lines))
	copy(o.lines, lines)
	return nil
}
