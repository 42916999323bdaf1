// Package user provides the User aggregate of the cafeteria directory: a
// student, teacher or administrator with credentials and an active flag.
//
// Users are never deleted. Deactivated users cannot sign in and their
// existing sessions stop resolving.
package user
