package commentfmt

import (
	"fmt"
	"unicode/utf8"

	"github.com/alnah/go-commentfmt/internal/superscript"
)

// Action is a formatting control offered next to the input surface.
type Action int

const (
	ActionBold Action = iota
	ActionItalic
	ActionStrikethrough
	ActionSuperscript
)

// Actions lists every action in toolbar order.
var Actions = []Action{ActionBold, ActionItalic, ActionStrikethrough, ActionSuperscript}

func (a Action) String() string {
	switch a {
	case ActionBold:
		return "bold"
	case ActionItalic:
		return "italic"
	case ActionStrikethrough:
		return "strikethrough"
	case ActionSuperscript:
		return "superscript"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Label returns the toolbar button label for a.
func (a Action) Label() string {
	switch a {
	case ActionBold:
		return "B"
	case ActionItalic:
		return "I"
	case ActionStrikethrough:
		return "S"
	case ActionSuperscript:
		return "A²"
	default:
		return "?"
	}
}

// ParseAction accepts an action name or a delimiter character.
func ParseAction(s string) (Action, error) {
	if s == "superscript" || s == "sup" || s == "^" {
		return ActionSuperscript, nil
	}
	d, err := ParseDelimiter(s)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown action %q", ErrInvalidDelimiter, s)
	}
	return actionFor(d), nil
}

// Delimiter returns the delimiter a wraps with. Superscript has none.
func (a Action) Delimiter() (Delimiter, bool) {
	switch a {
	case ActionBold:
		return DelimBold, true
	case ActionItalic:
		return DelimItalic, true
	case ActionStrikethrough:
		return DelimStrikethrough, true
	}
	return 0, false
}

func actionFor(d Delimiter) Action {
	switch d {
	case DelimItalic:
		return ActionItalic
	case DelimStrikethrough:
		return ActionStrikethrough
	default:
		return ActionBold
	}
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithTheme sets the preview markup.
// Panics if the theme is invalid (programmer error).
func WithTheme(t Theme) Option {
	if err := t.Validate(); err != nil {
		panic("commentfmt: WithTheme: " + err.Error())
	}
	return func(f *Formatter) {
		f.theme = t
	}
}

// WithPreviewCache memoizes previews in c.
func WithPreviewCache(c *PreviewCache) Option {
	return func(f *Formatter) {
		f.cache = c
	}
}

// WithEmptySuperscript sets what toggling superscript on an empty selection
// inserts. The default is "²".
func WithEmptySuperscript(s string) Option {
	return func(f *Formatter) {
		f.emptySuperscript = s
	}
}

// WithOnChange registers a hook called with the refreshed preview after
// every action, including actions ignored because the selection was
// elsewhere.
func WithOnChange(fn func(Preview)) Option {
	return func(f *Formatter) {
		f.onChange = fn
	}
}

// Formatter applies formatting actions to host surfaces and renders their
// previews. A Formatter holds no per-surface state and is safe for
// concurrent use when its cache and hook are.
type Formatter struct {
	theme            Theme
	cache            *PreviewCache
	emptySuperscript string
	onChange         func(Preview)
}

// New creates a Formatter with the default theme.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		theme:            DefaultTheme(),
		emptySuperscript: superscript.Squared,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Theme returns the formatter's theme.
func (f *Formatter) Theme() Theme {
	return f.theme
}

// Render renders marked text with the formatter's theme.
func (f *Formatter) Render(marked string) string {
	if f.cache != nil {
		return f.cache.Render(marked, f.theme)
	}
	return RenderWithTheme(marked, f.theme)
}

// ToggleSuperscript is ToggleSuperscript with the configured empty default.
func (f *Formatter) ToggleSuperscript(text string) string {
	if text == "" {
		return f.emptySuperscript
	}
	return superscript.Toggle(text)
}

// Preview renders the surface's current content, or its markup when the
// surface is a MarkupSource.
func (f *Formatter) Preview(s Surface) (Preview, error) {
	var content string
	var err error
	if m, ok := s.(MarkupSource); ok {
		content, err = m.Markup()
	} else {
		content, err = s.Content()
	}
	if err != nil {
		return Preview{}, err
	}
	if !PreviewVisible(content) {
		return Preview{}, nil
	}
	return Preview{HTML: f.Render(content), Visible: true}, nil
}

// Apply runs action a on the surface's selection and refreshes the
// preview. When the document selection lies outside the surface nothing is
// modified and ErrOutsideSurface is returned; the preview is refreshed
// regardless.
func (f *Formatter) Apply(s Surface, a Action) error {
	err := f.apply(s, a)
	if f.onChange != nil {
		p, perr := f.Preview(s)
		if perr != nil && err == nil {
			err = perr
		}
		if perr == nil {
			f.onChange(p)
		}
	}
	return err
}

func (f *Formatter) apply(s Surface, a Action) error {
	if gate, ok := s.(SelectionGate); ok {
		inside, err := gate.SelectionInside()
		if err != nil {
			return err
		}
		if !inside {
			return ErrOutsideSurface
		}
	}
	if d, ok := a.Delimiter(); ok {
		return f.WrapSelection(s, d)
	}
	if a == ActionSuperscript {
		return f.SuperscriptSelection(s)
	}
	return fmt.Errorf("%w: %s", ErrInvalidDelimiter, a)
}

// WrapSelection wraps the surface's selection with d and selects the
// original content between the two delimiters.
func (f *Formatter) WrapSelection(s Surface, d Delimiter) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, d)
	}
	span, selected, err := selection(s)
	if err != nil {
		return err
	}
	w := Wrap(selected, d)
	if err := s.Replace(span, w.Replacement); err != nil {
		return fmt.Errorf("replacing selection: %w", err)
	}
	return s.Select(w.Inner.Shift(span.Start))
}

// SuperscriptSelection toggles superscript on the surface's selection and
// selects the whole replacement, so toggling again converts it back.
func (f *Formatter) SuperscriptSelection(s Surface) error {
	span, selected, err := selection(s)
	if err != nil {
		return err
	}
	repl := f.ToggleSuperscript(selected)
	if err := s.Replace(span, repl); err != nil {
		return fmt.Errorf("replacing selection: %w", err)
	}
	return s.Select(Span{Start: span.Start, End: span.Start + utf8.RuneCountInString(repl)})
}

// selection reads the normalized selection and its text from s.
func selection(s Surface) (Span, string, error) {
	span, err := s.Selection()
	if err != nil {
		return Span{}, "", err
	}
	span = span.Normalize()
	content, err := s.Content()
	if err != nil {
		return Span{}, "", err
	}
	selected, err := span.Slice(content)
	if err != nil {
		return Span{}, "", err
	}
	return span, selected, nil
}
