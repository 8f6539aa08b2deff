package apierr

import "fmt"

const (
	CodeValidation = "validation_failed"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeInternal   = "internal_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(msg string) *Error {
	return &Error{Status: 400, Code: CodeValidation, Err: fmt.Errorf("%s", msg)}
}

// NotFound carries no fixed status: the router config decides whether it maps
// to 400 or 404 on the wire.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Err: fmt.Errorf("%s", msg)}
}

func Conflict(msg string) *Error {
	return &Error{Status: 409, Code: CodeConflict, Err: fmt.Errorf("%s", msg)}
}
