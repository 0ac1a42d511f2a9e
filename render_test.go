package commentfmt

import (
	"errors"
	"strings"
	"testing"
)

const (
	boldOpen   = `<span style="font-weight: 500;">`
	italicOpen = `<span class="yt-core-attributed-string--italicized">`
	strikeOpen = `<span class="yt-core-attributed-string--strikethrough">`
)

// ---------------------------------------------------------------------------
// TestRender - Default theme rendering
// ---------------------------------------------------------------------------

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold",
			input:    "*bold*",
			expected: boldOpen + "bold</span>",
		},
		{
			name:     "bold and italic",
			input:    "*a* and _b_",
			expected: boldOpen + "a</span> and " + italicOpen + "b</span>",
		},
		{
			name:     "stray hyphen",
			input:    "x - y",
			expected: "x - y",
		},
		{
			name:     "hyphen pair",
			input:    "x - y - z",
			expected: "x " + strikeOpen + " y </span> z",
		},
		{
			name:     "italic class hyphens survive strikethrough",
			input:    "_it_ -st-",
			expected: italicOpen + "it</span> " + strikeOpen + "st</span>",
		},
		{
			name:     "strikethrough around italic",
			input:    "-_x_-",
			expected: strikeOpen + italicOpen + "x</span></span>",
		},
		{
			name:     "hyphen in bold pairs across the closing tag",
			input:    "*a-b* -c-",
			expected: boldOpen + "a" + strikeOpen + "b</span> </span>c-",
		},
		{
			name:     "surface line breaks kept",
			input:    "*a*<br>_b_<br>",
			expected: boldOpen + "a</span><br>" + italicOpen + "b</span><br>",
		},
		{
			name:     "trimmed",
			input:    "\n  plain  \n",
			expected: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Render(tt.input); got != tt.expected {
				t.Errorf("Render(%q) =\n  %q\nwant\n  %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRender_NoResidualDelimiters(t *testing.T) {
	t.Parallel()

	got := Render("*bold*")
	if strings.Contains(got, "*") {
		t.Errorf("Render() = %q, contains residual delimiter", got)
	}
	if !strings.Contains(got, ">bold<") {
		t.Errorf("Render() = %q, want bold content wrapped", got)
	}
}

func TestRenderWithTheme(t *testing.T) {
	t.Parallel()

	got := RenderWithTheme("*a* _b_ -c-", ClassTheme("cf-"))
	want := `<span class="cf-bold">a</span> <span class="cf-italic">b</span> <span class="cf-strikethrough">c</span>`
	if got != want {
		t.Errorf("RenderWithTheme() =\n  %q\nwant\n  %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestRenderText - Plain text input
// ---------------------------------------------------------------------------

func TestRenderText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "escapes markup characters",
			input:    "a < b & *c*",
			expected: "a &lt; b &amp; " + boldOpen + "c</span>",
		},
		{
			name:     "newlines become line breaks",
			input:    "*a*\r\n_b_",
			expected: boldOpen + "a</span><br>" + italicOpen + "b</span>",
		},
		{
			name:     "typed tag is not trusted",
			input:    "<b>-x-</b>",
			expected: "&lt;b&gt;" + strikeOpen + "x</span>&lt;/b&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RenderText(tt.input, DefaultTheme()); got != tt.expected {
				t.Errorf("RenderText(%q) =\n  %q\nwant\n  %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPreviewVisible - Hide rules for empty surfaces
// ---------------------------------------------------------------------------

func TestPreviewVisible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		visible bool
	}{
		{name: "empty", content: "", visible: false},
		{name: "whitespace", content: " \n\t", visible: false},
		{name: "lone line break", content: "<br>", visible: false},
		{name: "padded line break", content: "  <br>\n", visible: false},
		{name: "two line breaks", content: "<br><br>", visible: true},
		{name: "text", content: "hi", visible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PreviewVisible(tt.content); got != tt.visible {
				t.Errorf("PreviewVisible(%q) = %v, want %v", tt.content, got, tt.visible)
			}
			p := RenderPreview(tt.content, DefaultTheme())
			if p.Visible != tt.visible {
				t.Errorf("RenderPreview(%q).Visible = %v, want %v", tt.content, p.Visible, tt.visible)
			}
			if !p.Visible && p.HTML != "" {
				t.Errorf("hidden preview carries HTML %q", p.HTML)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTheme_Validate - Theme markup checks
// ---------------------------------------------------------------------------

func TestTheme_Validate(t *testing.T) {
	t.Parallel()

	withBold := func(open string) Theme {
		th := DefaultTheme()
		th.Bold.Open = open
		return th
	}
	withItalicClose := func(c string) Theme {
		th := DefaultTheme()
		th.Italic.Close = c
		return th
	}

	tests := []struct {
		name    string
		theme   Theme
		wantErr bool
	}{
		{name: "default", theme: DefaultTheme()},
		{name: "class theme", theme: ClassTheme("cf-")},
		{name: "hyphenated classes allowed", theme: ClassTheme("my-fmt--")},
		{name: "bold with underscore", theme: withBold(`<b class="x_y">`), wantErr: true},
		{name: "open without brackets", theme: withBold("b"), wantErr: true},
		{name: "open with two tags", theme: withBold("<b><i>"), wantErr: true},
		{name: "open is a closing tag", theme: withBold("</b>"), wantErr: true},
		{name: "close is an opening tag", theme: withItalicClose("<i>"), wantErr: true},
		{name: "empty close", theme: withItalicClose(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.theme.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTheme) {
					t.Errorf("Validate() error = %v, want ErrInvalidTheme", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
