package database

import (
	"errors"
	"fmt"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotConnected indicates the store has not been opened, or was closed.
	ErrNotConnected = errors.New("database connection not established")

	// ErrInvalidArgument indicates an argument rejected before touching the store
	// (absent record, negative domain key).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotImplemented indicates a declared capability that is not supported.
	ErrNotImplemented = errors.New("operation not implemented")

	// ErrQuery indicates a statement execution failure reported by the store.
	ErrQuery = errors.New("query error")

	// ErrUnsupportedDriver indicates an unknown backend name in Config.Driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// ConfigurationError reports a connection lifecycle failure: the store is not
// open, or could not be opened, bound to its database, or closed.
type ConfigurationError struct {
	Op     string
	Detail string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := "configuration error: " + e.Op
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NotConnected returns the ConfigurationError raised when op runs on a closed store.
func NotConnected(op string) *ConfigurationError {
	return &ConfigurationError{Op: op, Err: ErrNotConnected}
}

// OperationError reports a failure of a store operation on a collection,
// including arguments rejected before the store was called.
type OperationError struct {
	Op         string
	Collection string
	Err        error
}

func (e *OperationError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("database operation %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("database operation %s on %s failed: %v", e.Op, e.Collection, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// InvalidArgument returns an OperationError wrapping ErrInvalidArgument.
func InvalidArgument(op, collection, format string, args ...any) *OperationError {
	return &OperationError{
		Op:         op,
		Collection: collection,
		Err:        fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)),
	}
}

// IsConfigurationError reports whether err is or wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsOperationError reports whether err is or wraps an *OperationError.
func IsOperationError(err error) bool {
	var oe *OperationError
	return errors.As(err, &oe)
}
