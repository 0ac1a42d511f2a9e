package commentfmt

import (
	"errors"
	"testing"
)

// gatedSurface is a TextSurface whose document selection can be moved
// elsewhere on the page.
type gatedSurface struct {
	*TextSurface
	inside bool
	err    error
}

func (g *gatedSurface) SelectionInside() (bool, error) {
	return g.inside, g.err
}

// failingSurface fails every read.
type failingSurface struct{ err error }

func (f failingSurface) Content() (string, error)   { return "", f.err }
func (f failingSurface) Selection() (Span, error)   { return Span{}, f.err }
func (f failingSurface) Replace(Span, string) error { return f.err }
func (f failingSurface) Select(Span) error          { return f.err }

func selectedSurface(t *testing.T, content string, span Span) *TextSurface {
	t.Helper()
	s := NewTextSurface(content)
	if err := s.Select(span); err != nil {
		t.Fatalf("Select(%v): %v", span, err)
	}
	return s
}

// ---------------------------------------------------------------------------
// TestFormatter_Apply - Actions against a surface
// ---------------------------------------------------------------------------

func TestFormatter_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		span    Span
		actions []Action
		want    string
	}{
		{
			name:    "bold word",
			content: "say hello world",
			span:    Span{4, 9},
			actions: []Action{ActionBold},
			want:    "say *[hello]* world",
		},
		{
			name:    "bold twice keeps selecting the content",
			content: "say hello world",
			span:    Span{4, 9},
			actions: []Action{ActionBold, ActionBold},
			want:    "say **[hello]** world",
		},
		{
			name:    "italic then strikethrough",
			content: "ab",
			span:    Span{0, 2},
			actions: []Action{ActionItalic, ActionStrikethrough},
			want:    "_-[ab]-_",
		},
		{
			name:    "wrap at cursor",
			content: "ab",
			span:    Cursor(1),
			actions: []Action{ActionItalic},
			want:    "a_|_b",
		},
		{
			name:    "superscript selects replacement",
			content: "x2 + y",
			span:    Span{1, 2},
			actions: []Action{ActionSuperscript},
			want:    "x[²] + y",
		},
		{
			name:    "superscript toggles back",
			content: "x2 + y",
			span:    Span{1, 2},
			actions: []Action{ActionSuperscript, ActionSuperscript},
			want:    "x[2] + y",
		},
		{
			name:    "superscript at cursor inserts squared",
			content: "x",
			span:    Cursor(1),
			actions: []Action{ActionSuperscript},
			want:    "x[²]",
		},
		{
			name:    "reversed selection",
			content: "abc",
			span:    Span{3, 0},
			actions: []Action{ActionBold},
			want:    "*[abc]*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := New()
			s := NewTextSurface(tt.content)
			s.selection = tt.span
			for _, a := range tt.actions {
				if err := f.Apply(s, a); err != nil {
					t.Fatalf("Apply(%s) error: %v", a, err)
				}
			}
			if s.String() != tt.want {
				t.Errorf("surface = %s, want %s", s, tt.want)
			}
		})
	}
}

func TestFormatter_Apply_OutsideSurface(t *testing.T) {
	t.Parallel()

	var previews []Preview
	f := New(WithOnChange(func(p Preview) { previews = append(previews, p) }))

	s := &gatedSurface{TextSurface: selectedSurface(t, "*hi*", Span{1, 3}), inside: false}

	err := f.Apply(s, ActionBold)
	if !errors.Is(err, ErrOutsideSurface) {
		t.Fatalf("Apply() error = %v, want ErrOutsideSurface", err)
	}
	if s.String() != "*[hi]*" {
		t.Errorf("surface modified: %s", s)
	}
	if len(previews) != 1 {
		t.Fatalf("onChange called %d times, want 1", len(previews))
	}
	if !previews[0].Visible || previews[0].HTML != boldOpen+"hi</span>" {
		t.Errorf("preview = %+v, want rendered bold", previews[0])
	}

	s.inside = true
	if err := f.Apply(s, ActionItalic); err != nil {
		t.Fatalf("Apply() inside error: %v", err)
	}
	if s.String() != "*_[hi]_*" {
		t.Errorf("surface = %s, want %s", s, "*_[hi]_*")
	}
}

func TestFormatter_Apply_GateError(t *testing.T) {
	t.Parallel()

	boom := errors.New("gate failed")
	s := &gatedSurface{TextSurface: NewTextSurface("x"), err: boom}

	if err := New().Apply(s, ActionBold); !errors.Is(err, boom) {
		t.Errorf("Apply() error = %v, want %v", err, boom)
	}
}

func TestFormatter_Apply_SurfaceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("surface gone")
	called := false
	f := New(WithOnChange(func(Preview) { called = true }))

	if err := f.Apply(failingSurface{err: boom}, ActionStrikethrough); !errors.Is(err, boom) {
		t.Errorf("Apply() error = %v, want %v", err, boom)
	}
	if called {
		t.Error("onChange called although the preview could not be read")
	}
}

func TestFormatter_WrapSelection_InvalidDelimiter(t *testing.T) {
	t.Parallel()

	err := New().WrapSelection(NewTextSurface("x"), Delimiter('#'))
	if !errors.Is(err, ErrInvalidDelimiter) {
		t.Errorf("WrapSelection() error = %v, want ErrInvalidDelimiter", err)
	}
}

func TestFormatter_EmptySuperscript(t *testing.T) {
	t.Parallel()

	f := New(WithEmptySuperscript("³"))
	s := NewTextSurface("x")
	if err := f.SuperscriptSelection(s); err != nil {
		t.Fatalf("SuperscriptSelection() error: %v", err)
	}
	if s.String() != "x[³]" {
		t.Errorf("surface = %s, want %s", s, "x[³]")
	}
	if got := f.ToggleSuperscript("a"); got != "ᵃ" {
		t.Errorf("ToggleSuperscript(a) = %q, want %q", got, "ᵃ")
	}
}

// ---------------------------------------------------------------------------
// TestFormatter_Preview - Preview refresh
// ---------------------------------------------------------------------------

func TestFormatter_Preview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    Preview
	}{
		{name: "hidden for empty surface", content: "<br>", want: Preview{}},
		{name: "rendered", content: "_x_", want: Preview{HTML: italicOpen + "x</span>", Visible: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := New().Preview(NewTextSurface(tt.content))
			if err != nil {
				t.Fatalf("Preview() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Preview() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// markupSurface reports a preview source that differs from its text, as a
// contenteditable element does.
type markupSurface struct {
	*TextSurface
	markup string
}

func (m markupSurface) Markup() (string, error) { return m.markup, nil }

func TestFormatter_Preview_PrefersMarkup(t *testing.T) {
	t.Parallel()

	s := markupSurface{TextSurface: NewTextSurface("ab"), markup: "*a*<br>b"}
	got, err := New().Preview(s)
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	want := Preview{HTML: boldOpen + "a</span><br>b", Visible: true}
	if got != want {
		t.Errorf("Preview() = %+v, want %+v", got, want)
	}
}

func TestFormatter_WithTheme(t *testing.T) {
	t.Parallel()

	f := New(WithTheme(ClassTheme("cf-")))
	if got := f.Render("*x*"); got != `<span class="cf-bold">x</span>` {
		t.Errorf("Render() = %q", got)
	}
	if f.Theme() != ClassTheme("cf-") {
		t.Errorf("Theme() = %+v, want class theme", f.Theme())
	}
}

func TestWithTheme_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid theme")
		}
	}()
	bad := DefaultTheme()
	bad.Bold.Close = ""
	WithTheme(bad)
}

// ---------------------------------------------------------------------------
// TestParseAction - Action names
// ---------------------------------------------------------------------------

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{input: "bold", want: ActionBold},
		{input: "*", want: ActionBold},
		{input: "_", want: ActionItalic},
		{input: "strike", want: ActionStrikethrough},
		{input: "sup", want: ActionSuperscript},
		{input: "superscript", want: ActionSuperscript},
		{input: "underline", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAction(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDelimiter) {
					t.Errorf("ParseAction(%q) error = %v, want ErrInvalidDelimiter", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAction(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestAction_Labels(t *testing.T) {
	t.Parallel()

	want := map[Action]string{
		ActionBold:          "B",
		ActionItalic:        "I",
		ActionStrikethrough: "S",
		ActionSuperscript:   "A²",
	}
	for _, a := range Actions {
		if a.Label() != want[a] {
			t.Errorf("%s.Label() = %q, want %q", a, a.Label(), want[a])
		}
	}
}
