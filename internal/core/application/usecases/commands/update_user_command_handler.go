package commands

import (
	"context"

	"cafeteria/internal/core/domain/model/user"
)

// UpdateUserCommandHandler applies administrator changes to a user.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
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

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if role, ok := cmd.Role(); ok {
		if err = u.ChangeRole(role); err != nil {
			return nil, err
		}
	}
	if active, ok := cmd.Active(); ok {
		u.SetActive(active)
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
