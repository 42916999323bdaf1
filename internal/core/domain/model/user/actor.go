package user

// Actor is the authenticated caller of an operation. It is resolved from the
// session on every request, so Role always reflects the stored user.
type Actor struct {
	ID   int64
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == Admin
}

// Validate rejects the zero Actor so unauthenticated calls cannot slip through.
func (a Actor) Validate() error {
	if a.ID <= 0 {
		return ErrActorIsAnonymous
	}
	return a.Role.Validate()
}
