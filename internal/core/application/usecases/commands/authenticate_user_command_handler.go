package commands

import (
	"context"
	"errors"

	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/core/ports"
	"cafeteria/internal/pkg/errs"
)

// AuthenticateUserCommandHandler verifies credentials of active users.
// Unknown email, wrong password and inactive account produce the same error.
type AuthenticateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewAuthenticateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the authenticated user or *errs.UnauthenticatedError.
func (h *AuthenticateUserCommandHandler) Handle(ctx context.Context, cmd AuthenticateUserCommand) (*user.User, error) {
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

	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewUnauthenticatedError("invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	if !u.IsActive() {
		return nil, errs.NewUnauthenticatedError("invalid credentials")
	}
	if h.hasher.Compare(u.PasswordHash(), cmd.Password()) != nil {
		return nil, errs.NewUnauthenticatedError("invalid credentials")
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
