package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid configuration or input.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file, directory, or executable was not found.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a scaffolding target already exists.
	ErrConflict = errors.New("already exists")

	// ErrDependency indicates the package manager failed to add a dependency.
	ErrDependency = errors.New("dependency installation failed")

	// ErrAborted indicates interactive input ended before an answer was given.
	ErrAborted = errors.New("aborted")
)
