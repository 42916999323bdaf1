package commands

import (
	"context"
	"errors"

	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"
)

// UpdateProfileCommandHandler lets users edit their own name and email.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the updated user, or *errs.ConflictError when the new email
// belongs to somebody else.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
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
	u, err := userRepo.Get(ctx, cmd.Actor().ID)
	if err != nil {
		return nil, err
	}

	var changeErrs []error
	if name, ok := cmd.Name(); ok {
		changeErrs = append(changeErrs, u.ChangeName(name))
	}
	if email, ok := cmd.Email(); ok {
		changeErrs = append(changeErrs, u.ChangeEmail(email))
	}
	if err = errors.Join(changeErrs...); err != nil {
		return nil, err
	}

	owner, err := userRepo.GetByEmail(ctx, u.Email())
	switch {
	case err == nil && owner.ID() != u.ID():
		return nil, errs.NewConflictError("email", u.Email())
	case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
