package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"cafeteria/internal/pkg/errs"
)

const (
	MaxNameLength     = 100
	MaxEmailLength    = 255
	MinPasswordLength = 6
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	ErrActorIsAnonymous     = errs.NewUnauthenticatedError("no authenticated user")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// User is a member of the cafeteria directory. Its id is assigned by storage.
// The password hash is opaque to the domain.
type User struct {
	id           int64
	name         string
	email        string
	passwordHash string
	role         Role
	active       bool
	registeredAt time.Time

	isConstructed bool
}

// NewUser creates an active user that is not yet persisted. The email is
// stored lower-case.
func NewUser(name, email, passwordHash string, role Role, now time.Time) (*User, error) {
	u := &User{
		active:        true,
		registeredAt:  now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.ChangeName(name),
		u.ChangeEmail(email),
		u.setPasswordHash(passwordHash),
		u.ChangeRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted user.
func RestoreUser(
	id int64,
	name, email, passwordHash string,
	role Role,
	active bool,
	registeredAt time.Time,
) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("user_id", fmt.Errorf("%d is not greater than 0", id))
	}
	u, err := NewUser(name, email, passwordHash, role, registeredAt)
	if err != nil {
		return nil, err
	}
	u.id = id
	u.active = active
	return u, nil
}

// ValidatePassword checks a plain password before it is hashed.
func ValidatePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if n := utf8.RuneCountInString(password); n < MinPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", n, MinPasswordLength, "unbounded")
	}
	return nil
}

// NormalizeEmail trims and lower-cases an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() int64 {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role == Admin
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) RegisteredAt() time.Time {
	return u.registeredAt
}

func (u *User) ChangeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	u.name = name
	return nil
}

func (u *User) ChangeEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if len(email) > MaxEmailLength || !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// SetActive activates or deactivates the user. Deactivation is the only way
// to remove a user.
func (u *User) SetActive(active bool) {
	u.active = active
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}

// Actor returns the identity used for authorization decisions.
func (u *User) Actor() Actor {
	return Actor{ID: u.id, Role: u.role}
}
