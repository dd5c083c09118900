package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes wrapped by LoadError.
var (
	ErrUnreadable    = errors.New("source unreadable")
	ErrMissingColumn = errors.New("missing required column")
	ErrMalformedRow  = errors.New("malformed row")
	ErrEmpty         = errors.New("no records")
)

// LoadError reports why a dataset could not be loaded.
// It is fatal: a process that gets one must not serve views.
type LoadError struct {
	Source string // file path or stream name
	Line   int    // 1-based source line, 0 when not row-specific
	Column string // offending column, empty when not column-specific
	Err    error  // wraps one of the sentinels above
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("load")
	if e.Source != "" {
		b.WriteString(" ")
		b.WriteString(e.Source)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %q", e.Column)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }
