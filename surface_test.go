package commentfmt

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestTextSurface - In-memory splicing and selection
// ---------------------------------------------------------------------------

func TestTextSurface_Replace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		span    Span
		text    string
		want    string
		wantErr error
	}{
		{name: "replace middle", content: "say hello", span: Span{4, 9}, text: "*hello*", want: "say *hello*|"},
		{name: "insert at cursor", content: "ab", span: Cursor(1), text: "__", want: "a__|b"},
		{name: "reversed span normalized", content: "abc", span: Span{2, 0}, text: "x", want: "x|c"},
		{name: "multibyte", content: "日本語", span: Span{1, 2}, text: "-本-", want: "日-本-|語"},
		{name: "out of range", content: "ab", span: Span{1, 5}, text: "x", wantErr: ErrSpanOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewTextSurface(tt.content)
			err := s.Replace(tt.span, tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Replace() error = %v, want %v", err, tt.wantErr)
				}
				if s.String() != tt.content+"|" {
					t.Errorf("surface modified on error: %s", s)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.String() != tt.want {
				t.Errorf("after Replace() = %s, want %s", s, tt.want)
			}
		})
	}
}

func TestTextSurface_Select(t *testing.T) {
	t.Parallel()

	s := NewTextSurface("hello world")
	if s.String() != "hello world|" {
		t.Fatalf("initial = %s, want cursor at end", s)
	}

	if err := s.Select(Span{6, 11}); err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if s.String() != "hello [world]" {
		t.Errorf("after Select() = %s, want %s", s, "hello [world]")
	}
	if s.Selected() != "world" {
		t.Errorf("Selected() = %q, want %q", s.Selected(), "world")
	}

	if err := s.Select(Span{0, 12}); !errors.Is(err, ErrSpanOutOfRange) {
		t.Errorf("Select() out of range error = %v, want ErrSpanOutOfRange", err)
	}
	if s.String() != "hello [world]" {
		t.Errorf("selection changed after failed Select(): %s", s)
	}
}
