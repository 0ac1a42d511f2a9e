package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf16"

	commentfmt "github.com/alnah/go-commentfmt"
)

// fakeBox is one #commentbox as the page script sees it. Offsets are UTF-16
// code units, as in a browser.
type fakeBox struct {
	marker   string
	broken   bool // lacks footer or emoji button
	removed  bool
	text     string
	markup   string // innerHTML; defaults to text
	sel      *utf16Span
	outside  bool // the page selection lies elsewhere on the page
	preview  commentfmt.Preview
	previews int
}

// fakePage implements caller by emulating window.__commentfmt.
type fakePage struct {
	boxes  []*fakeBox
	events []Event
	fail   map[string]error
}

// Node ids: document 1, body 2, box 3, input 4, text 5, paragraph 6.
var (
	hostChain    = []int{4, 3, 2, 1}
	insideChain  = []int{5, 4, 3, 2, 1}
	outsideChain = []int{6, 2, 1}
)

func (p *fakePage) call(_ context.Context, out any, method string, args ...any) error {
	if err := p.fail[method]; err != nil {
		return err
	}
	result, err := p.dispatch(method, args)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (p *fakePage) box(marker any) *fakeBox {
	for _, b := range p.boxes {
		if b.marker == marker && !b.removed {
			return b
		}
	}
	return nil
}

func (p *fakePage) dispatch(method string, args []any) (any, error) {
	switch method {
	case "pending":
		n := 0
		for _, b := range p.boxes {
			if b.marker == "" {
				n++
			}
		}
		return n, nil
	case "enhance":
		for _, b := range p.boxes {
			if b.marker == "" {
				b.marker = args[0].(string)
				return !b.broken, nil
			}
		}
		return false, nil
	case "drain":
		ev := p.events
		p.events = nil
		return ev, nil
	}

	b := p.box(args[0])
	switch method {
	case "text":
		if b == nil {
			return nil, nil
		}
		return b.text, nil
	case "markup":
		if b == nil {
			return nil, nil
		}
		if b.markup != "" {
			return b.markup, nil
		}
		return b.text, nil
	case "selection":
		if b == nil || b.outside || b.sel == nil {
			return nil, nil
		}
		return b.sel, nil
	case "chains":
		if b == nil {
			return nil, nil
		}
		ranges := [][]int{insideChain}
		if b.outside {
			ranges = [][]int{outsideChain}
		}
		if b.sel == nil {
			ranges = [][]int{}
		}
		return chains{Host: hostChain, Ranges: ranges}, nil
	case "replace":
		if b == nil {
			return false, nil
		}
		start, end := args[1].(int), args[2].(int)
		units := utf16.Encode([]rune(b.text))
		ins := utf16.Encode([]rune(args[3].(string)))
		next := append(append(append([]uint16{}, units[:start]...), ins...), units[end:]...)
		b.text = string(utf16.Decode(next))
		b.sel = &utf16Span{Start: start + len(ins), End: start + len(ins)}
		return true, nil
	case "select":
		if b == nil {
			return false, nil
		}
		b.sel = &utf16Span{Start: args[1].(int), End: args[2].(int)}
		return true, nil
	case "preview":
		if b == nil {
			return false, nil
		}
		b.preview = commentfmt.Preview{HTML: args[1].(string), Visible: args[2].(bool)}
		b.previews++
		return true, nil
	}
	return nil, fmt.Errorf("fake page: unknown method %q", method)
}

// Compile-time interface check.
var _ caller = (*fakePage)(nil)
