package scrapesage

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are machine-readable codes used to classify errors across package
// boundaries. Human-readable messages travel alongside them in Error.
const (
	EAUTH       = "auth"       // credential rejected by the backend
	EINTERNAL   = "internal"   // broken invariant, should never happen
	EINVALID    = "invalid"    // invalid input to a domain operation
	ENOTFOUND   = "not_found"  // entity does not exist
	EOVERLOADED = "overloaded" // transient backend capacity failure
	ESTORAGE    = "storage"    // session state load/save failure
	EUPSTREAM   = "upstream"   // any other backend or network failure
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the error code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("scrapesage error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
