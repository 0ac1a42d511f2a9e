// Package markup turns delimiter-marked comment text into styled markup.
//
// Each Pass rewrites every lazily matched pair of a single-byte delimiter
// into open/close markup. Passes are applied one after another over the
// whole string, so a later pass sees the markup produced by earlier ones.
// A guarded pass skips delimiters that sit inside a tag, which keeps it
// from rewriting characters of markup emitted by the earlier passes.
package markup

import (
	"strings"
	"unicode"
)

// Pass rewrites delimiter pairs into open/close markup.
type Pass struct {
	Delim   byte   // ASCII delimiter character
	Open    string // emitted in place of the opening delimiter
	Close   string // emitted in place of the closing delimiter
	Guarded bool   // skip delimiters that are inside a tag
}

// Apply runs every pass in order, then trims surrounding whitespace.
func Apply(s string, passes ...Pass) string {
	for _, p := range passes {
		s = p.Apply(s)
	}
	return Trim(s)
}

// Apply rewrites every pair in s. Pairs are matched left to right with the
// shortest possible body; a body holds at least one character and never
// spans a line terminator.
func (p Pass) Apply(s string) string {
	var b strings.Builder
	last := 0

	for i := 0; i < len(s); i++ {
		if !p.eligible(s, i) {
			continue
		}
		j, ok := p.closing(s, i)
		if !ok {
			continue
		}

		if b.Len() == 0 {
			b.Grow(len(s) + len(p.Open) + len(p.Close))
		}
		b.WriteString(s[last:i])
		b.WriteString(p.Open)
		b.WriteString(s[i+1 : j])
		b.WriteString(p.Close)

		last = j + 1
		i = j
	}

	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// eligible reports whether s[i] can act as a delimiter for this pass.
func (p Pass) eligible(s string, i int) bool {
	if s[i] != p.Delim {
		return false
	}
	return !p.Guarded || !Shielded(s, i+1)
}

// closing finds the closing delimiter for the opener at i.
func (p Pass) closing(s string, open int) (int, bool) {
	for j := open + 1; j < len(s); j++ {
		if lineTerminatorAt(s, j) {
			return 0, false
		}
		// s[open+1] is always body, even when it is the delimiter itself.
		if j > open+1 && p.eligible(s, j) {
			return j, true
		}
	}
	return 0, false
}

// Shielded reports whether position pos lies inside a tag: scanning forward
// from pos, a '>' appears before any '<'.
func Shielded(s string, pos int) bool {
	if pos >= len(s) {
		return false
	}
	k := strings.IndexAny(s[pos:], "<>")
	return k >= 0 && s[pos+k] == '>'
}

// lineTerminatorAt reports whether a line terminator starts at byte i.
func lineTerminatorAt(s string, i int) bool {
	switch s[i] {
	case '\n', '\r':
		return true
	case 0xE2:
		rest := s[i:]
		return strings.HasPrefix(rest, "\u2028") || strings.HasPrefix(rest, "\u2029")
	}
	return false
}

// Trim removes leading and trailing whitespace, including the byte order
// mark and line/paragraph separators.
func Trim(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
