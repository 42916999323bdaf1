package user

import (
	"fmt"
	"strings"

	"cafeteria/internal/pkg/errs"
)

// Role determines what a user may do.
type Role int

const (
	UnknownRole Role = iota
	Student
	Teacher
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Student:     "student",
		Teacher:     "teacher",
		Admin:       "admin",
	}
}

func Roles() []Role {
	return []Role{Student, Teacher, Admin}
}

// ParseRole converts "student", "teacher" or "admin" (any case) into a Role.
func ParseRole(s string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, r := range Roles() {
		if r.String() == needle {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

func (r Role) Validate() error {
	if r <= UnknownRole || r > Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsSelfAssignable reports whether the role may be chosen at public registration.
func (r Role) IsSelfAssignable() bool {
	return r == Student || r == Teacher
}
