package commentfmt

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Span is a half-open range [Start, End) of rune offsets into a text.
// An empty span is a cursor position.
type Span struct {
	Start int
	End   int
}

// Cursor returns the empty span at offset.
func Cursor(offset int) Span {
	return Span{Start: offset, End: offset}
}

// Len returns the number of runes covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether s is a cursor position.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Normalize returns s with Start <= End.
func (s Span) Normalize() Span {
	if s.Start <= s.End {
		return s
	}
	return Span{Start: s.End, End: s.Start}
}

// Shift moves both boundaries by n runes.
func (s Span) Shift(n int) Span {
	return Span{Start: s.Start + n, End: s.End + n}
}

// Within reports whether s lies inside text.
func (s Span) Within(text string) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= utf8.RuneCountInString(text)
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Slice returns the runes of text covered by s.
func (s Span) Slice(text string) (string, error) {
	from, to, err := s.byteRange(text)
	if err != nil {
		return "", err
	}
	return text[from:to], nil
}

// byteRange converts s into byte offsets of text.
func (s Span) byteRange(text string) (int, int, error) {
	if !s.Within(text) {
		return 0, 0, fmt.Errorf("%w: %s in %d runes", ErrSpanOutOfRange, s, utf8.RuneCountInString(text))
	}
	from, to := -1, len(text)
	n := 0
	for i := range text {
		if n == s.Start {
			from = i
		}
		if n == s.End {
			to = i
			break
		}
		n++
	}
	if from < 0 {
		from = len(text)
	}
	return from, to, nil
}

// UTF16 converts s into UTF-16 code unit offsets of text, the unit browser
// selection APIs count in.
func (s Span) UTF16(text string) (start, end int) {
	n, units := 0, 0
	start, end = -1, -1
	for _, r := range text {
		if n == s.Start {
			start = units
		}
		if n == s.End {
			end = units
		}
		units += utf16.RuneLen(r)
		n++
	}
	if start < 0 {
		start = units
	}
	if end < 0 {
		end = units
	}
	return start, end
}

// SpanFromUTF16 converts UTF-16 code unit offsets of text into a Span.
// An offset that falls inside a surrogate pair snaps to the start of the
// pair.
func SpanFromUTF16(text string, start, end int) Span {
	return Span{Start: runeOffset(text, start), End: runeOffset(text, end)}
}

func runeOffset(text string, units int) int {
	n, u := 0, 0
	for _, r := range text {
		w := utf16.RuneLen(r)
		if u+w > units {
			return n
		}
		u += w
		n++
	}
	return n
}
