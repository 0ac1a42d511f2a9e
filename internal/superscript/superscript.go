// Package superscript maps plain characters to their Unicode superscript
// glyphs and back.
//
// The forward table is static data; the inverse is derived from it once at
// package initialization. Neither table is modified afterwards, so every
// function here is safe for concurrent use.
package superscript

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Squared is returned by Toggle for empty input.
const Squared = "²"

// Direction is the conversion chosen for a string.
type Direction int

const (
	// Encode converts plain characters to superscript glyphs.
	Encode Direction = iota
	// Decode converts superscript glyphs back to plain characters.
	Decode
)

func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// forward maps each plain character to its superscript glyph.
//
// Uppercase S is intentionally absent: Unicode has no modifier capital S
// and sharing ˢ with lowercase s would break the inverse.
var forward = map[rune]rune{
	// Digits
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',

	// Uppercase
	'A': 'ᴬ', 'B': 'ᴮ', 'C': 'ꟲ', 'D': 'ᴰ', 'E': 'ᴱ',
	'F': 'ꟳ', 'G': 'ᴳ', 'H': 'ᴴ', 'I': 'ᴵ', 'J': 'ᴶ',
	'K': 'ᴷ', 'L': 'ᴸ', 'M': 'ᴹ', 'N': 'ᴺ', 'O': 'ᴼ',
	'P': 'ᴾ', 'Q': 'ꟴ', 'R': 'ᴿ', 'T': 'ᵀ',
	'U': 'ᵁ', 'V': 'ⱽ', 'W': 'ᵂ', 'X': 'ᵡ', 'Y': '𐞲', 'Z': 'ᙆ',

	// Lowercase
	'a': 'ᵃ', 'b': 'ᵇ', 'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ',
	'f': 'ᶠ', 'g': 'ᵍ', 'h': 'ʰ', 'i': 'ⁱ', 'j': 'ʲ',
	'k': 'ᵏ', 'l': 'ˡ', 'm': 'ᵐ', 'n': 'ⁿ', 'o': 'ᵒ',
	'p': 'ᵖ', 'q': '𐞥', 'r': 'ʳ', 's': 'ˢ', 't': 'ᵗ',
	'u': 'ᵘ', 'v': 'ᵛ', 'w': 'ʷ', 'x': 'ˣ', 'y': 'ʸ', 'z': 'ᶻ',

	// Symbols
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾', ',': '˒', '.': '⋅',
}

// inverse maps each superscript glyph back to its plain character.
var inverse = invert(forward)

// invert builds the inverse of m. It panics on duplicate values so a
// table edit that breaks the bijection fails at startup, not at runtime.
func invert(m map[rune]rune) map[rune]rune {
	out := make(map[rune]rune, len(m))
	for plain, glyph := range m {
		if prev, ok := out[glyph]; ok {
			panic(fmt.Sprintf("superscript: %q and %q both map to %q", prev, plain, glyph))
		}
		out[glyph] = plain
	}
	return out
}

// Lookup returns the superscript glyph for r.
func Lookup(r rune) (rune, bool) {
	g, ok := forward[r]
	return g, ok
}

// Reverse returns the plain character for a superscript glyph.
func Reverse(r rune) (rune, bool) {
	p, ok := inverse[r]
	return p, ok
}

// Len returns the number of mapped characters.
func Len() int {
	return len(forward)
}

// Plain returns the mapped plain characters in code point order.
func Plain() []rune {
	return slices.Sorted(maps.Keys(forward))
}

// Detect classifies s as a whole. Decode is chosen only when every rune is
// either unmapped in the forward table or a known superscript glyph; a single
// plain mappable rune forces Encode for the entire string.
func Detect(s string) Direction {
	for _, r := range s {
		_, plain := forward[r]
		_, glyph := inverse[r]
		if plain && !glyph {
			return Encode
		}
	}
	return Decode
}

// ToSuperscript maps every rune through the forward table.
// Unmapped runes pass through unchanged.
func ToSuperscript(s string) string {
	return mapRunes(s, forward)
}

// FromSuperscript maps every rune through the inverse table.
// Unmapped runes pass through unchanged.
func FromSuperscript(s string) string {
	return mapRunes(s, inverse)
}

// Toggle converts s in the direction chosen by Detect.
// Empty input yields Squared.
func Toggle(s string) string {
	if s == "" {
		return Squared
	}
	if Detect(s) == Decode {
		return FromSuperscript(s)
	}
	return ToSuperscript(s)
}

func mapRunes(s string, table map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if m, ok := table[r]; ok {
			r = m
		}
		b.WriteRune(r)
	}
	return b.String()
}
