package ports

// PasswordHasher turns plain passwords into opaque hashes and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
