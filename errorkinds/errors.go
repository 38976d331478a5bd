// Package errorkinds defines the closed set of error conditions that the
// device control core can surface to a caller.
package errorkinds

import (
	"errors"
	"fmt"
)

// The different general error types, mirroring the error taxonomy a
// caller needs to branch on.
var (
	ErrDeviceNotFound         = errors.New("device not found")
	ErrNotConnected           = errors.New("not connected")
	ErrCharacteristicNotFound = errors.New("characteristic not found")
	ErrServiceNotFound        = errors.New("service not found")
	ErrWriteFailed            = errors.New("write failed")
	ErrParseError             = errors.New("parse error")
	ErrMissingData            = errors.New("missing data")
	ErrIncompleteState        = errors.New("incomplete state")
	ErrValueError             = errors.New("value error")
	ErrStorageError           = errors.New("storage error")
	ErrStateInitializing      = errors.New("state is still initializing")
)

// ActionTimedOut indicates that a send_with_response call exceeded its
// retry budget.
type ActionTimedOut struct {
	Action string
}

func (e *ActionTimedOut) Error() string {
	return fmt.Sprintf("action timed out: %s", e.Action)
}

// FeatureNotSupported indicates that the caller tried to read or write a
// setting that the current device model does not expose.
type FeatureNotSupported struct {
	Feature string
}

func (e *FeatureNotSupported) Error() string {
	return fmt.Sprintf("feature not supported: %s", e.Feature)
}

// MissingData indicates that a handler needs state that has not been
// populated yet, for example setting sound modes before the state packet
// has arrived.
type MissingData struct {
	Name string
}

func (e *MissingData) Error() string {
	return fmt.Sprintf("missing data: %s", e.Name)
}

// ParseError indicates that an inbound packet body did not conform to the
// expected shape for its command.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// ValueError indicates that the UI supplied a Value variant incompatible
// with the Setting's type.
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("value error: %s", e.Message)
}

func (e *ValueError) Unwrap() error {
	return ErrValueError
}
