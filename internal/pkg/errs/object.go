package errs

import "fmt"

// ObjectNotFoundError reports a lookup of an entity that does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectIsUnavailableError reports an entity that exists but cannot be used
// right now, e.g. a product that is not on sale.
type ObjectIsUnavailableError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectIsUnavailableError(paramName string, id any) *ObjectIsUnavailableError {
	return &ObjectIsUnavailableError{ParamName: paramName, ID: id}
}

func NewObjectIsUnavailableErrorWithCause(paramName string, id any, cause error) *ObjectIsUnavailableError {
	return &ObjectIsUnavailableError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectIsUnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectIsUnavailable, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectIsUnavailableError) Unwrap() error {
	return ErrObjectIsUnavailable
}

// ConflictError reports a write that collides with existing state, such as a
// duplicate unique value.
type ConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewConflictError(paramName string, value any) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value}
}

func NewConflictErrorWithCause(paramName string, value any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s already exists", ErrConflict, e.ParamName, sanitize(e.Value)), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
