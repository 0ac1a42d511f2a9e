package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-rod/rod"
)

// caller invokes a method of the page-side window.__commentfmt object and
// decodes its JSON result into out (skipped when out is nil).
type caller interface {
	call(ctx context.Context, out any, method string, args ...any) error
}

const callJS = `(method, ...args) => window.__commentfmt[method](...args)`

type pageCaller struct {
	page *rod.Page
}

func (p pageCaller) call(ctx context.Context, out any, method string, args ...any) error {
	res, err := p.page.Context(ctx).Eval(callJS, append([]any{method}, args...)...)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEval, method, err)
	}
	if out == nil {
		return nil
	}
	data, err := json.Marshal(res.Value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEval, method, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: decoding result: %v", ErrEval, method, err)
	}
	return nil
}

// Compile-time interface check.
var _ caller = pageCaller{}
