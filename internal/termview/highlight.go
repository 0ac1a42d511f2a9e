package termview

import (
	"fmt"
	"io"
	"slices"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// StyleNames returns the registered chroma style names, sorted.
func StyleNames() []string {
	return styles.Names()
}

// HasStyle reports whether name is a registered chroma style.
func HasStyle(name string) bool {
	return slices.Contains(styles.Names(), name)
}

// Highlight writes markup to w as syntax-coloured HTML using the chroma
// style named style and 256-colour terminal escapes.
func Highlight(w io.Writer, markup, style string) error {
	if !HasStyle(style) {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	lexer := lexers.Get("html")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	it, err := lexer.Tokenise(nil, markup)
	if err != nil {
		return fmt.Errorf("tokenizing markup: %w", err)
	}
	if err := formatter.Format(w, styles.Get(style), it); err != nil {
		return fmt.Errorf("formatting markup: %w", err)
	}
	return nil
}
