package commands

import (
	"errors"

	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/guard"
)

var ErrAuthenticateUserCommandIsNotConstructed = errors.New(
	"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
)

// AuthenticateUserCommand carries login credentials.
type AuthenticateUserCommand struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserCommand(email, password string) (AuthenticateUserCommand, error) {
	email = user.NormalizeEmail(email)

	var errList []error
	if email == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return AuthenticateUserCommand{}, err
	}

	return AuthenticateUserCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

func (c AuthenticateUserCommand) Email() string {
	return c.email
}

func (c AuthenticateUserCommand) Password() string {
	return c.password
}
