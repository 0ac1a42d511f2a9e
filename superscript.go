package commentfmt

import "github.com/alnah/go-commentfmt/internal/superscript"

// SuperscriptDirection is the conversion ToggleSuperscript picks for a string.
type SuperscriptDirection = superscript.Direction

// Superscript directions.
const (
	ToSuperscript   = superscript.Encode
	FromSuperscript = superscript.Decode
)

// ToggleSuperscript converts text to Unicode superscript, or back when every
// character is already a superscript glyph or has no superscript form.
// Characters outside the table pass through unchanged. Empty input yields
// "²".
//
// Strings that mix plain and superscript characters are encoded as a whole
// and do not round-trip.
func ToggleSuperscript(text string) string {
	return superscript.Toggle(text)
}

// DetectSuperscript reports the direction ToggleSuperscript would use.
func DetectSuperscript(text string) SuperscriptDirection {
	return superscript.Detect(text)
}
