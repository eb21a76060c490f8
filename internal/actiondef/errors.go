package actiondef

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by errors.Is for every *FormatError.
var ErrFormat = errors.New("invalid action definition format")

// FormatError reports an action definition with more than three sections.
type FormatError struct {
	// Line is the 1-based line number of the offending separator.
	Line int
	// Separators is the number of separators seen up to and including Line.
	Separators int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: separator #%d starts a fourth section, an action has only Goal, Result and Feedback", e.Line, e.Separators)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}
