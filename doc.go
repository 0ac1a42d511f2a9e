// Package commentfmt adds markdown-style formatting to comment boxes:
// bold, italic, strikethrough and Unicode superscript, plus a live preview
// of the rendered result.
//
// # Quick Start
//
// The engine is a handful of pure functions. Wrap a selection, render the
// content, toggle superscript:
//
//	w := commentfmt.Wrap("hello", commentfmt.DelimBold)
//	// w.Replacement == "*hello*", w.Inner == Span{1, 6}
//
//	html := commentfmt.Render("*bold* and _italic_")
//
//	commentfmt.ToggleSuperscript("x2") // "ˣ²"
//	commentfmt.ToggleSuperscript("ˣ²") // "x2"
//
// # Delimiters
//
// Three single-character delimiters are recognized:
//
//	*text*   bold
//	_text_   italic
//	-text-   strikethrough
//
// Render applies one pass per delimiter, in that order, over the whole
// string. Each pass pairs delimiters lazily (shortest body first), needs at
// least one character between them and never crosses a line break. The
// strikethrough pass skips hyphens that sit inside a tag, so class names
// emitted by earlier passes survive.
//
// # Hosts
//
// The engine never touches a document. A host exposes its input box as a
// Surface and lets a Formatter splice results back:
//
//	f := commentfmt.New(
//	    commentfmt.WithPreviewCache(commentfmt.NewPreviewCache(commentfmt.DefaultCacheTTL)),
//	    commentfmt.WithOnChange(func(p commentfmt.Preview) { show(p) }),
//	)
//	err := f.Apply(surface, commentfmt.ActionBold)
//
// Surfaces that implement SelectionGate are checked first, so a click with
// the selection elsewhere on the page changes nothing. ContainsSelection
// implements that check for any document tree exposing Node.
//
// TextSurface is an in-memory Surface used by the CLI and tests; the
// internal/browser package drives a live page through Chrome.
//
// # Superscript
//
// ToggleSuperscript picks its direction from the whole string: it decodes
// only when every character is a superscript glyph or has no superscript
// form at all. Strings mixing plain and superscript characters are encoded
// and do not round-trip. Uppercase S has no superscript glyph and passes
// through unchanged.
package commentfmt
