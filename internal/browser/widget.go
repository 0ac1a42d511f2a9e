package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	commentfmt "github.com/alnah/go-commentfmt"
	"github.com/alnah/go-commentfmt/internal/logging"
)

// Widget is one enhanced comment box.
type Widget struct {
	marker    string
	caller    caller
	formatter *commentfmt.Formatter
	logger    *slog.Logger

	// ctx scopes the page calls made through the Surface methods, which
	// take no context of their own.
	ctx   context.Context
	nodes map[int]*domNode
}

// Compile-time interface checks.
var (
	_ commentfmt.Surface       = (*Widget)(nil)
	_ commentfmt.SelectionGate = (*Widget)(nil)
	_ commentfmt.MarkupSource  = (*Widget)(nil)
)

func newWidget(ctx context.Context, marker string, c caller, f *commentfmt.Formatter, logger *slog.Logger) *Widget {
	return &Widget{
		marker:    marker,
		caller:    c,
		formatter: f,
		logger:    logging.Widget(logger, marker),
		ctx:       ctx,
		nodes:     make(map[int]*domNode),
	}
}

// Marker returns the value stamped on the box's data-enhanced attribute.
func (w *Widget) Marker() string {
	return w.marker
}

// Content returns the input's text content.
func (w *Widget) Content() (string, error) {
	return w.str("text")
}

// Markup returns the input's inner HTML, the source of the preview.
func (w *Widget) Markup() (string, error) {
	return w.str("markup")
}

func (w *Widget) str(method string) (string, error) {
	var s *string
	if err := w.caller.call(w.ctx, &s, method, w.marker); err != nil {
		return "", err
	}
	if s == nil {
		return "", ErrWidgetGone
	}
	return *s, nil
}

type utf16Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Selection returns the selection inside the input in rune offsets.
func (w *Widget) Selection() (commentfmt.Span, error) {
	var sel *utf16Span
	if err := w.caller.call(w.ctx, &sel, "selection", w.marker); err != nil {
		return commentfmt.Span{}, err
	}
	if sel == nil {
		return commentfmt.Span{}, commentfmt.ErrNoSelection
	}
	content, err := w.Content()
	if err != nil {
		return commentfmt.Span{}, err
	}
	return commentfmt.SpanFromUTF16(content, sel.Start, sel.End), nil
}

// Replace splices text over span and leaves the cursor after it.
func (w *Widget) Replace(span commentfmt.Span, text string) error {
	return w.rangeCall("replace", span, text)
}

// Select makes span the page's selection.
func (w *Widget) Select(span commentfmt.Span) error {
	return w.rangeCall("select", span)
}

func (w *Widget) rangeCall(method string, span commentfmt.Span, extra ...any) error {
	content, err := w.Content()
	if err != nil {
		return err
	}
	span = span.Normalize()
	if !span.Within(content) {
		return fmt.Errorf("%w: %s", commentfmt.ErrSpanOutOfRange, span)
	}
	start, end := span.UTF16(content)

	var ok bool
	args := append([]any{w.marker, start, end}, extra...)
	if err := w.caller.call(w.ctx, &ok, method, args...); err != nil {
		return err
	}
	if !ok {
		return ErrWidgetGone
	}
	return nil
}

type chains struct {
	Host   []int   `json:"host"`
	Ranges [][]int `json:"ranges"`
}

// SelectionInside reports whether every range of the page's selection lies
// within the input.
func (w *Widget) SelectionInside() (bool, error) {
	var ch *chains
	if err := w.caller.call(w.ctx, &ch, "chains", w.marker); err != nil {
		return false, err
	}
	if ch == nil {
		return false, ErrWidgetGone
	}

	sel := commentfmt.Selection{Ranges: make([]commentfmt.Range, 0, len(ch.Ranges))}
	for _, r := range ch.Ranges {
		sel.Ranges = append(sel.Ranges, commentfmt.Range{CommonAncestor: w.node(r)})
	}
	return commentfmt.ContainsSelection(w.node(ch.Host), sel), nil
}

// node returns the cached node for chain[0], linking it to the ancestors
// listed after it. Reusing nodes by id keeps identity comparisons valid
// across calls.
func (w *Widget) node(chain []int) commentfmt.Node {
	var parent *domNode
	for i := len(chain) - 1; i >= 0; i-- {
		n, ok := w.nodes[chain[i]]
		if !ok {
			n = &domNode{id: chain[i]}
			w.nodes[chain[i]] = n
		}
		n.parent = parent
		parent = n
	}
	if parent == nil {
		return nil
	}
	return parent
}

// ShowPreview updates the box's preview container.
func (w *Widget) ShowPreview(p commentfmt.Preview) error {
	var ok bool
	if err := w.caller.call(w.ctx, &ok, "preview", w.marker, p.HTML, p.Visible); err != nil {
		return err
	}
	if !ok {
		return ErrWidgetGone
	}
	return nil
}

// Click runs action as a toolbar button press: the action applies only
// when the selection is inside the input, and the preview refreshes either
// way.
func (w *Widget) Click(a commentfmt.Action) error {
	err := w.formatter.Apply(w, a)
	if errors.Is(err, commentfmt.ErrOutsideSurface) {
		w.logger.Debug("action_ignored", "action", a.String(), "reason", "selection outside input")
		err = nil
	} else {
		logging.ActionResult(w.logger, a.String(), err)
	}

	if rerr := w.Refresh(); err == nil {
		err = rerr
	}
	return err
}

// Refresh re-renders the preview from the input's markup.
func (w *Widget) Refresh() error {
	p, err := w.formatter.Preview(w)
	if err != nil {
		return err
	}
	return w.ShowPreview(p)
}

// domNode mirrors a page node by the id the page script assigned to it.
type domNode struct {
	id     int
	parent *domNode
}

func (n *domNode) Parent() commentfmt.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}
