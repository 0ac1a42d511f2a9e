package commentfmt

import "fmt"

// Style is the visual style bound to a delimiter.
type Style int

const (
	Bold Style = iota
	Italic
	Strikethrough
)

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Strikethrough:
		return "strikethrough"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Delimiter is a single-character formatting marker.
type Delimiter byte

// The fixed delimiter set.
const (
	DelimBold          Delimiter = '*'
	DelimItalic        Delimiter = '_'
	DelimStrikethrough Delimiter = '-'
)

// Delimiters lists every delimiter in render order.
var Delimiters = []Delimiter{DelimBold, DelimItalic, DelimStrikethrough}

// ParseDelimiter accepts either the delimiter character ("*", "_", "-")
// or its style name ("bold", "italic", "strikethrough").
func ParseDelimiter(s string) (Delimiter, error) {
	switch s {
	case "*", "bold", "b":
		return DelimBold, nil
	case "_", "italic", "i":
		return DelimItalic, nil
	case "-", "strikethrough", "strike", "s":
		return DelimStrikethrough, nil
	}
	return 0, fmt.Errorf("%w: %q (must be *, _ or -)", ErrInvalidDelimiter, s)
}

// Style returns the style bound to d.
func (d Delimiter) Style() Style {
	switch d {
	case DelimItalic:
		return Italic
	case DelimStrikethrough:
		return Strikethrough
	default:
		return Bold
	}
}

// Valid reports whether d is one of the fixed delimiters.
func (d Delimiter) Valid() bool {
	return d == DelimBold || d == DelimItalic || d == DelimStrikethrough
}

func (d Delimiter) String() string {
	return string(rune(d))
}
