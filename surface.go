package commentfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Surface is the host's text-input surface: a content buffer with a live
// selection. Offsets are rune offsets into Content.
type Surface interface {
	// Content returns the current content as markup/text.
	Content() (string, error)
	// Selection returns the current selection.
	Selection() (Span, error)
	// Replace splices text in place of span.
	Replace(span Span, text string) error
	// Select makes span the live selection.
	Select(span Span) error
}

// SelectionGate is implemented by surfaces that can tell whether the
// document's selection lies inside them. Surfaces without it are assumed
// to own their selection.
type SelectionGate interface {
	SelectionInside() (bool, error)
}

// MarkupSource is implemented by surfaces whose preview source is markup
// rather than their plain text, such as a contenteditable element whose
// inner HTML carries line breaks.
type MarkupSource interface {
	Markup() (string, error)
}

// TextSurface is an in-memory Surface.
type TextSurface struct {
	content   string
	selection Span
}

// NewTextSurface creates a surface holding content with the cursor at the
// end.
func NewTextSurface(content string) *TextSurface {
	return &TextSurface{
		content:   content,
		selection: Cursor(utf8.RuneCountInString(content)),
	}
}

// Compile-time interface check.
var _ Surface = (*TextSurface)(nil)

// Content implements Surface.
func (t *TextSurface) Content() (string, error) {
	return t.content, nil
}

// Selection implements Surface.
func (t *TextSurface) Selection() (Span, error) {
	return t.selection, nil
}

// Replace implements Surface. The cursor is left after the inserted text.
func (t *TextSurface) Replace(span Span, text string) error {
	span = span.Normalize()
	from, to, err := span.byteRange(t.content)
	if err != nil {
		return err
	}
	var b strings.Builder
	b.Grow(len(t.content) - (to - from) + len(text))
	b.WriteString(t.content[:from])
	b.WriteString(text)
	b.WriteString(t.content[to:])
	t.content = b.String()
	t.selection = Cursor(span.Start + utf8.RuneCountInString(text))
	return nil
}

// Select implements Surface.
func (t *TextSurface) Select(span Span) error {
	span = span.Normalize()
	if !span.Within(t.content) {
		return fmt.Errorf("%w: %s", ErrSpanOutOfRange, span)
	}
	t.selection = span
	return nil
}

// Selected returns the currently selected text.
func (t *TextSurface) Selected() string {
	s, err := t.selection.Slice(t.content)
	if err != nil {
		return ""
	}
	return s
}

// String returns the content with the selection marked by brackets, which
// keeps test failures readable: "a[bc]d", or "ab|cd" for a cursor.
func (t *TextSurface) String() string {
	from, to, err := t.selection.byteRange(t.content)
	if err != nil {
		return t.content
	}
	if from == to {
		return t.content[:from] + "|" + t.content[from:]
	}
	return t.content[:from] + "[" + t.content[from:to] + "]" + t.content[to:]
}
