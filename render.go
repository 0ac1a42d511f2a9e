package commentfmt

import (
	"strings"

	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-commentfmt/internal/markup"
)

// LineBreak is the markup an empty contenteditable surface reports.
const LineBreak = "<br>"

// Render converts delimiter-marked text into preview markup with the
// default theme. Bold, italic and strikethrough passes run in that order
// over the whole string; the result is trimmed.
func Render(marked string) string {
	return RenderWithTheme(marked, DefaultTheme())
}

// RenderWithTheme is Render with custom markup per style.
func RenderWithTheme(marked string, theme Theme) string {
	return markup.Apply(marked, theme.passes()...)
}

// RenderText renders plain text rather than surface markup: HTML special
// characters are escaped and newlines become line breaks first.
func RenderText(plain string, theme Theme) string {
	return RenderWithTheme(EscapeText(plain), theme)
}

// EscapeText converts plain text into the markup a contenteditable surface
// would hold for it.
func EscapeText(plain string) string {
	escaped := string(util.EscapeHTML([]byte(plain)))
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", LineBreak)
}

// PreviewVisible reports whether a preview should be shown for content.
// Empty content and the lone line break of an emptied surface hide it.
func PreviewVisible(content string) bool {
	trimmed := markup.Trim(content)
	return trimmed != "" && trimmed != LineBreak
}

// Preview is the rendered state of a preview container.
type Preview struct {
	HTML    string
	Visible bool
}

// RenderPreview renders content for the preview container. HTML is empty
// when the preview is hidden.
func RenderPreview(content string, theme Theme) Preview {
	if !PreviewVisible(content) {
		return Preview{}
	}
	return Preview{HTML: RenderWithTheme(content, theme), Visible: true}
}
