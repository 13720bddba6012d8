package datamodel

import "errors"

// Errors returned by datamodel operations.
var (
	// ErrEndpointNotFound indicates the requested endpoint does not exist.
	ErrEndpointNotFound = errors.New("endpoint not found")

	// ErrClusterNotFound indicates the requested cluster does not exist.
	ErrClusterNotFound = errors.New("cluster not found")

	// ErrCommandNotFound indicates the requested command does not exist.
	ErrCommandNotFound = errors.New("command not found")

	// ErrUnsupportedCommand indicates the command is not supported by the cluster.
	ErrUnsupportedCommand = errors.New("unsupported command")

	// ErrInvalidCommand indicates malformed or out-of-range command fields.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrTimedRequired indicates a timed interaction is required.
	ErrTimedRequired = errors.New("timed interaction required")

	// ErrConstraintError indicates a constraint violation.
	ErrConstraintError = errors.New("constraint error")

	// ErrResourceExhausted indicates insufficient resources.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrBusy indicates the resource is busy with another operation.
	ErrBusy = errors.New("resource busy")

	// ErrInvalidInState indicates the operation is invalid in the current state.
	ErrInvalidInState = errors.New("invalid in current state")
)
