package commands_test

import (
	"errors"
	"testing"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateUserCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name      string
		stored    func(t *testing.T) (*user.User, error)
		compare   error
		wantErr   error
		wantCheck bool
	}{
		{
			name: "valid credentials",
			stored: func(t *testing.T) (*user.User, error) {
				return storedUser(t, 5, "ana@ucp.edu", user.Student, true), nil
			},
			wantCheck: true,
		},
		{
			name: "wrong password",
			stored: func(t *testing.T) (*user.User, error) {
				return storedUser(t, 5, "ana@ucp.edu", user.Student, true), nil
			},
			compare:   errors.New("mismatch"),
			wantErr:   errs.ErrUnauthenticated,
			wantCheck: true,
		},
		{
			name: "inactive user",
			stored: func(t *testing.T) (*user.User, error) {
				return storedUser(t, 5, "ana@ucp.edu", user.Student, false), nil
			},
			wantErr: errs.ErrUnauthenticated,
		},
		{
			name: "unknown email",
			stored: func(*testing.T) (*user.User, error) {
				return nil, errs.NewObjectNotFoundError("email", "ana@ucp.edu")
			},
			wantErr: errs.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			stored, getErr := tt.stored(t)

			users := new(MockUserRepository)
			uow := new(MockUserUoW)
			factory := new(MockUserUoWFactory)
			hasher := new(MockPasswordHasher)
			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("UserRepository").Return(users).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			if stored != nil {
				users.On("GetByEmail", ctx, "ana@ucp.edu").Return(stored, getErr).Once()
			} else {
				users.On("GetByEmail", ctx, "ana@ucp.edu").Return(nil, getErr).Once()
			}
			if tt.wantCheck {
				hasher.On("Compare", "hash", "secret").Return(tt.compare).Once()
			}
			if tt.wantErr == nil {
				uow.On("Commit", ctx).Return(nil).Once()
			}

			cmd, err := commands.NewAuthenticateUserCommand("ANA@ucp.edu", "secret")
			require.NoError(t, err)
			h := commands.NewAuthenticateUserCommandHandler(factory, hasher)

			u, err := h.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "unauthenticated: invalid credentials", err.Error())
				assert.Nil(t, u)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(5), u.ID())
			}
			hasher.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestNewAuthenticateUserCommand(t *testing.T) {
	_, err := commands.NewAuthenticateUserCommand(" ", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "password")
}
