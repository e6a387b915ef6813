// Package errors provides the error types used across pwconf.
//
// Sentinel errors classify failures; wrapped error types add the operation
// and path that failed. Both work with the standard errors.Is and errors.As.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotFound - resource not found
//   - ErrInvalid - validation failed
//   - ErrIO - file I/O error
//
// Wrapped error types (add context):
//   - EmitError{Op, Path, Err} - config file emission errors
//   - ConfigError{Path, Err} - pwconf settings errors
//
// # Usage
//
//	// Structured emission error; matches both ErrIO and the OS error
//	return &errors.EmitError{Op: "write", Path: path, Err: err}
//
//	// Check error types
//	if errors.IsIO(err) {
//	    // report and exit
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = baseError("not found")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// EmitError represents a failure while emitting the config file.
// Every EmitError is an I/O failure: errors.Is(err, ErrIO) is always true,
// and the underlying OS error stays reachable through errors.Is/As.
type EmitError struct {
	// Op is the step that failed (e.g., "resolve", "write", "close").
	Op string
	// Path is the target file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *EmitError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("emit %s %s: %s", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("emit %s: %s", e.Op, e.Err)
}

func (e *EmitError) Unwrap() []error { return []error{ErrIO, e.Err} }

// ConfigError represents an error related to pwconf's own settings.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// A nil err yields nil.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// AsEmitError reports whether err can be typed as an *EmitError.
func AsEmitError(err error) (*EmitError, bool) {
	var ee *EmitError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
