package commentfmt

import (
	"fmt"
	"strings"

	"github.com/alnah/go-commentfmt/internal/markup"
)

// Tag is the markup emitted around one styled run.
type Tag struct {
	Open  string
	Close string
}

// Theme holds the markup emitted for each style.
type Theme struct {
	Bold          Tag
	Italic        Tag
	Strikethrough Tag
}

// Class names used by the default theme. They match the host page's own
// attributed-string styles so previews look like posted comments.
const (
	ItalicClass        = "yt-core-attributed-string--italicized"
	StrikethroughClass = "yt-core-attributed-string--strikethrough"
	BoldStyle          = "font-weight: 500;"
)

// DefaultTheme returns the theme matching the host page's comment styles.
func DefaultTheme() Theme {
	return Theme{
		Bold:          Tag{Open: `<span style="` + BoldStyle + `">`, Close: "</span>"},
		Italic:        Tag{Open: `<span class="` + ItalicClass + `">`, Close: "</span>"},
		Strikethrough: Tag{Open: `<span class="` + StrikethroughClass + `">`, Close: "</span>"},
	}
}

// ClassTheme returns a theme that styles every run with a span carrying
// prefix + style name as its class, e.g. "cf-bold".
func ClassTheme(prefix string) Theme {
	tag := func(s Style) Tag {
		return Tag{Open: `<span class="` + prefix + s.String() + `">`, Close: "</span>"}
	}
	return Theme{
		Bold:          tag(Bold),
		Italic:        tag(Italic),
		Strikethrough: tag(Strikethrough),
	}
}

// Tag returns the markup for style s.
func (t Theme) Tag(s Style) Tag {
	switch s {
	case Italic:
		return t.Italic
	case Strikethrough:
		return t.Strikethrough
	default:
		return t.Bold
	}
}

// Validate checks that every tag is a single open/close tag pair and that
// the bold markup carries no italic delimiter, which the italic pass would
// otherwise rewrite. Hyphens are safe anywhere inside a tag.
func (t Theme) Validate() error {
	for _, d := range Delimiters {
		s := d.Style()
		tag := t.Tag(s)
		if !isTag(tag.Open) || strings.HasPrefix(tag.Open, "</") {
			return fmt.Errorf("%w: %s open tag %q must be a single tag", ErrInvalidTheme, s, tag.Open)
		}
		if !isTag(tag.Close) || !strings.HasPrefix(tag.Close, "</") {
			return fmt.Errorf("%w: %s close tag %q must be a closing tag", ErrInvalidTheme, s, tag.Close)
		}
	}
	if strings.ContainsRune(t.Bold.Open+t.Bold.Close, rune(DelimItalic)) {
		return fmt.Errorf("%w: bold tag contains %q", ErrInvalidTheme, DelimItalic)
	}
	return nil
}

// isTag reports whether s is exactly one <...> tag.
func isTag(s string) bool {
	return len(s) > 2 && s[0] == '<' && s[len(s)-1] == '>' &&
		strings.Count(s, "<") == 1 && strings.Count(s, ">") == 1
}

// passes returns the render passes in their fixed order.
func (t Theme) passes() []markup.Pass {
	return []markup.Pass{
		{Delim: byte(DelimBold), Open: t.Bold.Open, Close: t.Bold.Close},
		{Delim: byte(DelimItalic), Open: t.Italic.Open, Close: t.Italic.Close},
		{Delim: byte(DelimStrikethrough), Open: t.Strikethrough.Open, Close: t.Strikethrough.Close, Guarded: true},
	}
}
