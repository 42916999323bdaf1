// Package bcrypt hashes passwords with golang.org/x/crypto/bcrypt.
package bcrypt

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher implements ports.PasswordHasher.
type Hasher struct {
	cost int
}

// NewHasher uses bcrypt.DefaultCost when cost is out of bcrypt's range.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

func (h Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare returns bcrypt.ErrMismatchedHashAndPassword on a wrong password.
func (h Hasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
