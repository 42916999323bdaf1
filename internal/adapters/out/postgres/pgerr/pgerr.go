// Package pgerr recognises PostgreSQL error codes reported by lib/pq.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
	queryCanceled       pq.ErrorCode = "57014"
)

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

// IsForeignKeyViolation reports whether err references a missing row.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolation)
}

// IsQueryCanceled reports whether the server cancelled a statement, which
// lib/pq reports when the request context ends while a query runs.
func IsQueryCanceled(err error) bool {
	return hasCode(err, queryCanceled)
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}
	return false
}
