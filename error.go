package nyaa

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes.
const (
	ECONFLICT = "conflict"
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("nyaa error: code=%s message=%s", e.Code, e.Message)
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
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrTableNotFound is returned when the page has no results table.
var ErrTableNotFound = errors.New("unable to find results table")

// BaseURLError is returned when the page URL handed to a Parser is invalid.
type BaseURLError struct {
	URL string
	Err error
}

func (e *BaseURLError) Error() string {
	return fmt.Sprintf("unable to parse url %s: %v", e.URL, e.Err)
}

func (e *BaseURLError) Unwrap() error { return e.Err }

// SelectorError is returned when a selector matches nothing.
// Path is the chain of ancestors of the node the query ran from.
type SelectorError struct {
	Selector string
	Path     []string
}

func (e *SelectorError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("unable to find element with %s", e.Selector)
	}
	return fmt.Sprintf("unable to find element with %s in %s", e.Selector, strings.Join(e.Path, "/"))
}

// AttributeError is returned when a required attribute is missing.
type AttributeError struct {
	Name string
	Path []string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("unable to find attribute %s in %s", e.Name, strings.Join(e.Path, "/"))
}

// URLJoinError is returned when an href cannot be resolved against the page URL.
type URLJoinError struct {
	Raw string
	Err error
}

func (e *URLJoinError) Error() string {
	return fmt.Sprintf("unable to join href url %s with page url: %v", e.Raw, e.Err)
}

func (e *URLJoinError) Unwrap() error { return e.Err }

// FieldError is returned when a field value cannot be parsed.
type FieldError struct {
	Field string
	Raw   string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unable to parse %s %q: %v", e.Field, e.Raw, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// PaginationError wraps any failure while extracting pagination.
type PaginationError struct {
	Err error
}

func (e *PaginationError) Error() string {
	return fmt.Sprintf("pagination: %v", e.Err)
}

func (e *PaginationError) Unwrap() error { return e.Err }

// RowError identifies the table row (0-based, document order) that failed.
type RowError struct {
	Index int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
