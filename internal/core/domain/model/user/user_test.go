package user_test

import (
	"strings"
	"testing"
	"time"

	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	t.Run("should create active user with normalized email", func(t *testing.T) {
		u, err := user.NewUser(" Ana Pérez ", " Ana@UCP.edu ", "hash", user.Student, now)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Zero(t, u.ID())
		assert.Equal(t, "Ana Pérez", u.Name())
		assert.Equal(t, "ana@ucp.edu", u.Email())
		assert.Equal(t, "hash", u.PasswordHash())
		assert.Equal(t, user.Student, u.Role())
		assert.True(t, u.IsActive())
		assert.False(t, u.IsAdmin())
		assert.Equal(t, now, u.RegisteredAt())
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		for _, email := range []string{"ana", "ana@ucp", "ana ucp@edu.ar", "@ucp.edu"} {
			_, err := user.NewUser("Ana", email, "hash", user.Student, now)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, email)
		}
	})

	t.Run("should join invalid fields", func(t *testing.T) {
		_, err := user.NewUser("", "", "", user.UnknownRole, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password hash")
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("should reject long name", func(t *testing.T) {
		_, err := user.NewUser(strings.Repeat("a", user.MaxNameLength+1), "a@b.co", "hash", user.Student, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreUser(t *testing.T) {
	u, err := user.RestoreUser(3, "Admin", "admin@ucp.edu", "hash", user.Admin, false, time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID())
	assert.True(t, u.IsAdmin())
	assert.False(t, u.IsActive())

	_, err = user.RestoreUser(0, "Admin", "admin@ucp.edu", "hash", user.Admin, true, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUser_Change(t *testing.T) {
	u, err := user.NewUser("Ana", "ana@ucp.edu", "hash", user.Student, time.Now())
	require.NoError(t, err)

	require.NoError(t, u.ChangeEmail("ANA.P@ucp.edu"))
	require.NoError(t, u.ChangeRole(user.Admin))
	u.SetActive(false)

	assert.Equal(t, "ana.p@ucp.edu", u.Email())
	assert.True(t, u.IsAdmin())
	assert.False(t, u.IsActive())

	require.ErrorIs(t, u.ChangeRole(user.UnknownRole), errs.ErrValueIsInvalid)
	assert.Equal(t, user.Admin, u.Role())
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, user.ValidatePassword("secret"))
	require.ErrorIs(t, user.ValidatePassword(""), errs.ErrValueIsRequired)
	require.ErrorIs(t, user.ValidatePassword("12345"), errs.ErrValueIsOutOfRange)
}

func TestRole(t *testing.T) {
	for _, r := range user.Roles() {
		parsed, err := user.ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := user.ParseRole("cook")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.True(t, user.Student.IsSelfAssignable())
	assert.True(t, user.Teacher.IsSelfAssignable())
	assert.False(t, user.Admin.IsSelfAssignable())
}
