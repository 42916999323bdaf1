package commands_test

import (
	"errors"
	"testing"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/core/ports"
	"cafeteria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand(t *testing.T) {
	t.Run("defaults to student and normalizes email", func(t *testing.T) {
		cmd, err := commands.NewRegisterUserCommand("Ana", " Ana@UCP.edu ", "secret", user.UnknownRole)

		require.NoError(t, err)
		assert.Equal(t, user.Student, cmd.Role())
		assert.Equal(t, "ana@ucp.edu", cmd.Email())
	})

	t.Run("teacher may self register", func(t *testing.T) {
		cmd, err := commands.NewRegisterUserCommand("Luis", "luis@ucp.edu", "secret", user.Teacher)

		require.NoError(t, err)
		assert.Equal(t, user.Teacher, cmd.Role())
	})

	t.Run("admin may not self register", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("Eve", "eve@ucp.edu", "secret", user.Admin)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("Ana", "ana@ucp.edu", "12345", user.Student)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("admin registration for operators", func(t *testing.T) {
		cmd, err := commands.NewRegisterAdminCommand("Root", "root@ucp.edu", "secret")

		require.NoError(t, err)
		assert.Equal(t, user.Admin, cmd.Role())
	})
}

type registerFixture struct {
	users   *MockUserRepository
	uow     *MockUserUoW
	factory *MockUserUoWFactory
	hasher  *MockPasswordHasher
	mailer  *MockMailer
	handler commands.RegisterUserCommandHandler
}

func newRegisterFixture() *registerFixture {
	f := &registerFixture{
		users:   new(MockUserRepository),
		uow:     new(MockUserUoW),
		factory: new(MockUserUoWFactory),
		hasher:  new(MockPasswordHasher),
		mailer:  new(MockMailer),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.handler = commands.NewRegisterUserCommandHandler(f.factory, f.hasher, f.mailer, discardLogger())
	return f
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("Ana", "ana@ucp.edu", "secret", user.Student)
	require.NoError(t, err)
	stored := storedUser(t, 12, "ana@ucp.edu", user.Student, true)

	f := newRegisterFixture()
	mock.InOrder(
		f.hasher.On("Hash", "secret").Return("bcrypt-hash", nil).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("UserRepository").Return(f.users).Once(),
		f.users.On("GetByEmail", ctx, "ana@ucp.edu").Return(nil, errs.NewObjectNotFoundError("email", "ana@ucp.edu")).Once(),
		f.users.On("Add", ctx, mock.MatchedBy(func(u *user.User) bool {
			return u.PasswordHash() == "bcrypt-hash" && u.Role() == user.Student
		})).Return(stored, nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.mailer.On("Send", ctx, mock.MatchedBy(func(m ports.Mail) bool {
			return m.To == "ana@ucp.edu"
		})).Return(nil).Once(),
	)
	f.uow.On("Rollback", ctx).Return(nil).Once()

	u, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(12), u.ID())
	f.users.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
	f.hasher.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_MailFailureIsIgnored(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("Ana", "ana@ucp.edu", "secret", user.Student)
	require.NoError(t, err)

	f := newRegisterFixture()
	f.hasher.On("Hash", "secret").Return("bcrypt-hash", nil).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("UserRepository").Return(f.users).Once()
	f.users.On("GetByEmail", ctx, "ana@ucp.edu").Return(nil, errs.NewObjectNotFoundError("email", "ana@ucp.edu")).Once()
	f.users.On("Add", ctx, mock.Anything).Return(storedUser(t, 12, "ana@ucp.edu", user.Student, true), nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.mailer.On("Send", ctx, mock.Anything).Return(errors.New("smtp down")).Once()

	u, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.NotNil(t, u)
	f.mailer.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("Ana", "ana@ucp.edu", "secret", user.Student)
	require.NoError(t, err)

	f := newRegisterFixture()
	f.hasher.On("Hash", "secret").Return("bcrypt-hash", nil).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("UserRepository").Return(f.users).Once()
	f.users.On("GetByEmail", ctx, "ana@ucp.edu").Return(storedUser(t, 4, "ana@ucp.edu", user.Student, true), nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	f.users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", ctx)
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestRegisterUserCommandHandler_Handle_ConflictOnInsert(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("Ana", "ana@ucp.edu", "secret", user.Student)
	require.NoError(t, err)

	f := newRegisterFixture()
	f.hasher.On("Hash", "secret").Return("bcrypt-hash", nil).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("UserRepository").Return(f.users).Once()
	f.users.On("GetByEmail", ctx, "ana@ucp.edu").Return(nil, errs.NewObjectNotFoundError("email", "ana@ucp.edu")).Once()
	f.users.On("Add", ctx, mock.Anything).Return(nil, errs.NewConflictError("email", "ana@ucp.edu")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
