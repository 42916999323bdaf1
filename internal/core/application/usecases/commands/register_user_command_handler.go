package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/core/ports"
	"cafeteria/internal/pkg/errs"
)

// RegisterUserCommandHandler adds users to the directory and greets them by
// mail once the user is committed. A mail failure is logged and does not undo
// the registration.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	mailer     ports.Mailer
	logger     *slog.Logger
}

func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	logger *slog.Logger,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		mailer:     mailer,
		logger:     logger.With("component", "RegisterUserCommandHandler"),
	}
}

// Handle returns the stored user, or *errs.ConflictError when the email is
// already registered.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := user.NewUser(cmd.Name(), cmd.Email(), hash, cmd.Role(), now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	_, err = userRepo.GetByEmail(ctx, u.Email())
	if err == nil {
		return nil, errs.NewConflictError("email", u.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	stored, err := userRepo.Add(ctx, u)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.sendWelcome(ctx, stored)

	return stored, nil
}

func (h *RegisterUserCommandHandler) sendWelcome(ctx context.Context, u *user.User) {
	mail := ports.Mail{
		To:      u.Email(),
		Subject: "Bienvenido a la Cafetería UCP",
		Body: fmt.Sprintf(
			"Hola %s,\n\nTu cuenta fue creada. Ya podés hacer pedidos desde el menú.\n",
			u.Name(),
		),
	}
	if err := h.mailer.Send(ctx, mail); err != nil {
		h.logger.Warn("welcome mail not sent", "user_id", u.ID(), "error", err)
	}
}
