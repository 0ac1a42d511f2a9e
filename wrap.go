package commentfmt

import "unicode/utf8"

// Wrapped is the result of wrapping a selection with a delimiter.
type Wrapped struct {
	// Replacement is the text that replaces the selection.
	Replacement string
	// Inner covers the original selection inside Replacement, excluding
	// both delimiters, so that wrapping again affects only the content.
	Inner Span
}

// Wrap surrounds selected with d on both sides. An empty selection yields
// two adjacent delimiters and a cursor between them.
func Wrap(selected string, d Delimiter) Wrapped {
	mark := string(rune(d))
	return Wrapped{
		Replacement: mark + selected + mark,
		Inner:       Span{Start: 1, End: 1 + utf8.RuneCountInString(selected)},
	}
}
