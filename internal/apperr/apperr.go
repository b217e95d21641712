// Package apperr defines application-level error values.
package apperr

// Error is an application error with a user-presentable message and an
// optional underlying cause.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any error derived from the same sentinel via Wrap, so
// errors.Is(sentinel.Wrap(cause), sentinel) holds.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Message == t.Message
}

// Wrap returns a copy of the error with the underlying cause attached.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
	}
}
