package cli

import (
	"errors"
	"io/fs"

	"github.com/K4R-IAI/UROSActionLib/internal/actiondef"
	"github.com/K4R-IAI/UROSActionLib/internal/actionpath"
	"github.com/K4R-IAI/UROSActionLib/internal/config"
	"github.com/K4R-IAI/UROSActionLib/internal/ioerr"
)

// Process exit codes.
const (
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
	ExitFormat   = 4
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// FromRunError maps an error returned by app.Run to an ExitError.
func FromRunError(err error) *ExitError {
	if err == nil {
		return nil
	}

	code := ExitFailure
	switch {
	case errors.Is(err, actiondef.ErrFormat):
		code = ExitFormat
	case errors.Is(err, actionpath.ErrIdentity), isMissingInput(err):
		code = ExitNotFound
	case errors.Is(err, config.ErrInvalidProject):
		code = ExitUsage
	}
	return &ExitError{Code: code, Message: err.Error()}
}

// isMissingInput reports whether err comes from reading a file that does
// not exist. A missing output directory surfaces as a failed write and is
// not an input problem.
func isMissingInput(err error) bool {
	var ioErr *ioerr.Error
	return errors.As(err, &ioErr) && ioErr.Op == "read" && errors.Is(ioErr.Err, fs.ErrNotExist)
}
