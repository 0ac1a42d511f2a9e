package commentfmt

import "errors"

// Sentinel errors for host-facing operations. The formatting core itself
// never fails; these come from surfaces, options and parsing.
var (
	ErrInvalidDelimiter = errors.New("invalid delimiter")
	ErrSpanOutOfRange   = errors.New("span out of range")
	ErrNoSelection      = errors.New("no active selection")
	ErrOutsideSurface   = errors.New("selection is outside the input surface")

	// Theme validation errors.
	ErrInvalidTheme = errors.New("invalid theme")
)
