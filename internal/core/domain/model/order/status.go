package order

import (
	"fmt"
	"strings"

	"cafeteria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Ready ──> Delivered
//	   │          │
//	   └──────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	Ready
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getTransitions lists the allowed target states per source state.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown states have no outgoing edges
	return map[Status][]Status{
		Pending: {Ready, Cancelled},
		Ready:   {Delivered, Cancelled},
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Ready, Delivered, Cancelled}
}

// ParseStatus converts the persisted or wire representation ("pending",
// "ready", ...) into a Status. Matching is case-insensitive.
//
// Returns a ValueIsInvalidError for anything else, including "unknown".
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, status := range Statuses() {
		if status.String() == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate returns an error for Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether s -> target is an edge of the state machine.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when s -> target is allowed.
//
// Returns:
//   - (target, nil) on a valid edge
//   - (Unknown, ValueIsInvalidError) if target itself is not a valid status
//   - (Unknown, InvalidTransitionError) for any other pair, including self loops
//
// Example:
//
//	next, err := order.Pending.TransitionTo(order.Ready) // Ready, nil
//	_, err = order.Delivered.TransitionTo(order.Cancelled) // InvalidTransitionError
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
