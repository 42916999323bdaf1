package commands

import (
	"errors"
	"fmt"

	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand is an administrator changing another user's role or
// activation. Users are deactivated, never deleted.
type UpdateUserCommand struct {
	actor  user.Actor
	userID int64
	role   *user.Role
	active *bool

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(actor user.Actor, userID int64, role *user.Role, active *bool) (UpdateUserCommand, error) {
	if err := actor.Validate(); err != nil {
		return UpdateUserCommand{}, err
	}
	if !actor.IsAdmin() {
		return UpdateUserCommand{}, errs.NewForbiddenError("update user")
	}

	var errList []error
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"user_id", fmt.Errorf("%d is not greater than 0", userID)))
	}
	if role == nil && active == nil {
		errList = append(errList, errs.NewValueIsRequiredError("role or active"))
	}
	if role != nil {
		errList = append(errList, role.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateUserCommand{}, err
	}

	return UpdateUserCommand{
		actor:  actor,
		userID: userID,
		role:   role,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) Actor() user.Actor {
	return c.actor
}

func (c UpdateUserCommand) UserID() int64 {
	return c.userID
}

func (c UpdateUserCommand) Role() (user.Role, bool) {
	if c.role == nil {
		return user.UnknownRole, false
	}
	return *c.role, true
}

func (c UpdateUserCommand) Active() (bool, bool) {
	if c.active == nil {
		return false, false
	}
	return *c.active, true
}
