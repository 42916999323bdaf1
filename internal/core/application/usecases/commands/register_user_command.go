package commands

import (
	"errors"
	"fmt"

	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a new member of the directory.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand builds a public registration. Only student and
// teacher may be chosen; UnknownRole defaults to student.
func NewRegisterUserCommand(name, email, password string, role user.Role) (RegisterUserCommand, error) {
	if role == user.UnknownRole {
		role = user.Student
	}
	if role.Validate() == nil && !role.IsSelfAssignable() {
		return RegisterUserCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%s cannot be chosen at registration", role))
	}
	return newRegisterUserCommand(name, email, password, role)
}

// NewRegisterAdminCommand builds a registration of an administrator. It is
// used by operator tooling, never by the public API.
func NewRegisterAdminCommand(name, email, password string) (RegisterUserCommand, error) {
	return newRegisterUserCommand(name, email, password, user.Admin)
}

func newRegisterUserCommand(name, email, password string, role user.Role) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the normalized (lower-case) email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	email = user.NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if err := user.ValidatePassword(password); err != nil {
		return err
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
