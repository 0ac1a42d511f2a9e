// Package termview renders comment preview markup for a terminal.
//
// Preview markup is tokenized with golang.org/x/net/html. Opening tags that
// match the theme's bold, italic or strikethrough markup start a styled run;
// text between them is printed with the matching lipgloss style. Highlight
// prints the raw markup instead, coloured by chroma.
package termview

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"

	commentfmt "github.com/alnah/go-commentfmt"
)

// ErrUnknownStyle indicates a chroma style name that is not registered.
var ErrUnknownStyle = errors.New("unknown color style")

// Segment is a run of preview text sharing one set of styles.
type Segment struct {
	Text   string
	Bold   bool
	Italic bool
	Strike bool
}

func (s Segment) plain() bool {
	return !s.Bold && !s.Italic && !s.Strike
}

// Styles holds the terminal style applied to each kind of run.
// Runs carrying several kinds combine the matching styles.
type Styles struct {
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Strike lipgloss.Style
}

// DefaultStyles returns plain bold, italic and strikethrough attributes.
func DefaultStyles() Styles {
	return Styles{
		Bold:   lipgloss.NewStyle().Bold(true),
		Italic: lipgloss.NewStyle().Italic(true),
		Strike: lipgloss.NewStyle().Strikethrough(true),
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyles replaces the default terminal styles.
func WithStyles(s Styles) Option {
	return func(r *Renderer) {
		r.styles = s
	}
}

// Renderer turns preview markup produced with a theme into terminal text.
type Renderer struct {
	theme  commentfmt.Theme
	styles Styles
}

// New creates a Renderer that recognizes theme's markup.
func New(theme commentfmt.Theme, opts ...Option) *Renderer {
	r := &Renderer{theme: theme, styles: DefaultStyles()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// kind is a bit set of run styles.
type kind uint8

const (
	kindBold kind = 1 << iota
	kindItalic
	kindStrike
)

// open is one element on the tokenizer stack.
type open struct {
	name string
	kind kind
}

// Segments splits markup into styled runs. Line breaks become "\n".
// Adjacent runs with the same styles are merged.
func (r *Renderer) Segments(markup string) []Segment {
	var (
		segs  []Segment
		stack []open
	)

	emit := func(text string) {
		if text == "" {
			return
		}
		var k kind
		for _, o := range stack {
			k |= o.kind
		}
		seg := Segment{
			Text:   text,
			Bold:   k&kindBold != 0,
			Italic: k&kindItalic != 0,
			Strike: k&kindStrike != 0,
		}
		if n := len(segs); n > 0 && sameStyle(segs[n-1], seg) {
			segs[n-1].Text += text
			return
		}
		segs = append(segs, seg)
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader can produce.
			return segs

		case html.TextToken:
			emit(string(z.Text()))

		case html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				emit("\n")
			}

		case html.StartTagToken:
			raw := string(z.Raw())
			name, _ := z.TagName()
			tag := string(name)
			if tag == "br" {
				emit("\n")
				continue
			}
			if voidElements[tag] {
				continue
			}
			stack = append(stack, open{name: tag, kind: r.classify(raw, tag)})

		case html.EndTagToken:
			name, _ := z.TagName()
			stack = closeTag(stack, string(name))
		}
	}
}

// Render returns markup as terminal text with ANSI styles.
func (r *Renderer) Render(markup string) string {
	var b strings.Builder
	for _, seg := range r.Segments(markup) {
		if seg.plain() {
			b.WriteString(seg.Text)
			continue
		}
		style := r.style(seg)
		// lipgloss pads multi-line blocks to a common width, so style
		// each line on its own.
		for i, line := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}
	return b.String()
}

// Write renders markup to w followed by a newline.
func (r *Renderer) Write(w io.Writer, markup string) error {
	_, err := io.WriteString(w, r.Render(markup)+"\n")
	return err
}

func (r *Renderer) style(seg Segment) lipgloss.Style {
	s := lipgloss.NewStyle()
	if seg.Bold {
		s = s.Inherit(r.styles.Bold)
	}
	if seg.Italic {
		s = s.Inherit(r.styles.Italic)
	}
	if seg.Strike {
		s = s.Inherit(r.styles.Strike)
	}
	return s
}

// classify maps an opening tag to run styles. Exact theme markup wins;
// plain HTML formatting elements are recognized as a fallback.
func (r *Renderer) classify(raw, name string) kind {
	switch raw {
	case r.theme.Bold.Open:
		return kindBold
	case r.theme.Italic.Open:
		return kindItalic
	case r.theme.Strikethrough.Open:
		return kindStrike
	}
	switch name {
	case "b", "strong":
		return kindBold
	case "i", "em":
		return kindItalic
	case "s", "del", "strike":
		return kindStrike
	}
	return 0
}

// closeTag removes the innermost open element named name. Unmatched end
// tags are ignored.
func closeTag(stack []open, name string) []open {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].name == name {
			return append(stack[:i], stack[i+1:]...)
		}
	}
	return stack
}

func sameStyle(a, b Segment) bool {
	return a.Bold == b.Bold && a.Italic == b.Italic && a.Strike == b.Strike
}

var voidElements = map[string]bool{
	"area": true, "base": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "source": true,
	"track": true, "wbr": true,
}
