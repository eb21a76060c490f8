// Package ioerr defines the error type reported when reading an action
// definition or writing a generated message file fails.
package ioerr

import (
	"errors"
	"fmt"
)

// ErrIO is matched by errors.Is for every *Error.
var ErrIO = errors.New("i/o failure")

// Error records a failed file operation and the path it touched.
type Error struct {
	Op   string // "read", "write", "mkdir"
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the underlying cause, so callers can test
// for either (e.g. errors.Is(err, fs.ErrNotExist)).
func (e *Error) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// Wrap returns nil when err is nil, otherwise an *Error.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Err: err}
}
