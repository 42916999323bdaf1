package commands

import (
	"errors"

	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand changes the actor's own name and/or email.
// A nil field is left unchanged; at least one field must be set.
type UpdateProfileCommand struct {
	actor user.Actor
	name  *string
	email *string

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(actor user.Actor, name, email *string) (UpdateProfileCommand, error) {
	if err := actor.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}
	if name == nil && email == nil {
		return UpdateProfileCommand{}, errs.NewValueIsRequiredError("name or email")
	}
	return UpdateProfileCommand{
		actor: actor,
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) Actor() user.Actor {
	return c.actor
}

func (c UpdateProfileCommand) Name() (string, bool) {
	if c.name == nil {
		return "", false
	}
	return *c.name, true
}

func (c UpdateProfileCommand) Email() (string, bool) {
	if c.email == nil {
		return "", false
	}
	return *c.email, true
}
