package vstream

import (
	"errors"
	"fmt"
	"os"
)

// Common stream errors. Where possible, these alias os package errors
// for compatibility with os.IsNotExist, os.IsPermission, etc.
var (
	ErrNotFound     = os.ErrNotExist
	ErrExist        = os.ErrExist
	ErrPermission   = os.ErrPermission
	ErrInvalid      = os.ErrInvalid
	ErrIsDir        = errors.New("vstream: is a directory")
	ErrNotDir       = errors.New("vstream: not a directory")
	ErrClosed       = errors.New("vstream: already closed")
	ErrNotSupported = errors.New("vstream: operation not supported by this backend")
	ErrNoModule     = errors.New("vstream: no module accepts source")
)

// OpenError records a failed open together with the backend and source.
type OpenError struct {
	// Kind is the backend that was asked to open the source, if any.
	Kind Kind

	// Source is the identifier passed to Open.
	Source string

	// Err is the underlying error, usually an *fs.PathError from the OS.
	Err error
}

// Error implements the error interface.
func (e *OpenError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("vstream: open %s %q: %v", e.Kind, e.Source, e.Err)
	}
	return fmt.Sprintf("vstream: open %q: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *OpenError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error indicates the source does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotDir returns true if a directory was expected but something else was found.
func IsNotDir(err error) bool {
	return errors.Is(err, ErrNotDir)
}
