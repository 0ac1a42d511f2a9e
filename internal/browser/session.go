package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/google/uuid"

	commentfmt "github.com/alnah/go-commentfmt"
	"github.com/alnah/go-commentfmt/internal/assets"
)

// DefaultPollInterval is how often Run checks the page for new comment
// boxes and queued events.
const DefaultPollInterval = 50 * time.Millisecond

// Event kinds queued by the page script.
const (
	EventAction  = "action"  // a format button was clicked
	EventRefresh = "refresh" // the input was clicked, edited or blurred
)

// Event is one queued page event.
type Event struct {
	Marker string `json:"marker"`
	Kind   string `json:"kind"`
	Action string `json:"action,omitempty"`
}

type buttonSpec struct {
	Action string `json:"action"`
	Label  string `json:"label"`
}

// Session enhances the comment boxes of one page and dispatches their
// events.
type Session struct {
	ctx       context.Context
	caller    caller
	formatter *commentfmt.Formatter
	logger    *slog.Logger
	newMarker func() string

	widgets map[string]*Widget
	order   []string
}

// NewSession installs bundle's stylesheet and script into page. ctx scopes
// every page call the session makes.
func NewSession(ctx context.Context, page *rod.Page, bundle *assets.Bundle, f *commentfmt.Formatter, logger *slog.Logger) (*Session, error) {
	if err := page.AddStyleTag("", bundle.Style); err != nil {
		return nil, fmt.Errorf("%w: style: %v", ErrInstall, err)
	}
	if err := page.AddScriptTag("", bundle.Script); err != nil {
		return nil, fmt.Errorf("%w: script: %v", ErrInstall, err)
	}
	return newSession(ctx, pageCaller{page: page}, f, logger), nil
}

func newSession(ctx context.Context, c caller, f *commentfmt.Formatter, logger *slog.Logger) *Session {
	return &Session{
		ctx:       ctx,
		caller:    c,
		formatter: f,
		logger:    logger,
		newMarker: uuid.NewString,
		widgets:   make(map[string]*Widget),
	}
}

// buttons lists the toolbar in display order.
func buttons() []buttonSpec {
	specs := make([]buttonSpec, 0, len(commentfmt.Actions))
	for _, a := range commentfmt.Actions {
		specs = append(specs, buttonSpec{Action: a.String(), Label: a.Label()})
	}
	return specs
}

// Enhance stamps every comment box not yet processed and returns the new
// widgets. Boxes already carrying a marker are left alone, so calling it
// repeatedly is safe.
func (s *Session) Enhance() ([]*Widget, error) {
	var added []*Widget
	for {
		var pending int
		if err := s.caller.call(s.ctx, &pending, "pending"); err != nil {
			return added, err
		}
		if pending == 0 {
			return added, nil
		}

		marker := s.newMarker()
		var ok bool
		if err := s.caller.call(s.ctx, &ok, "enhance", marker, buttons()); err != nil {
			return added, err
		}
		if !ok {
			s.logger.Warn("commentbox_skipped", "widget", marker, "reason", "missing input, footer or emoji button")
			continue
		}

		w := newWidget(s.ctx, marker, s.caller, s.formatter, s.logger)
		s.widgets[marker] = w
		s.order = append(s.order, marker)
		added = append(added, w)
		s.logger.Debug("commentbox_enhanced", "widget", marker)
	}
}

// Widgets returns the enhanced widgets in discovery order.
func (s *Session) Widgets() []*Widget {
	out := make([]*Widget, 0, len(s.order))
	for _, m := range s.order {
		out = append(out, s.widgets[m])
	}
	return out
}

// Widget returns the widget stamped with marker.
func (s *Session) Widget(marker string) (*Widget, bool) {
	w, ok := s.widgets[marker]
	return w, ok
}

// Poll enhances new comment boxes, then drains and dispatches queued
// events. It returns the number of events handled. Errors from single
// events are logged and do not stop the others.
func (s *Session) Poll() (int, error) {
	if _, err := s.Enhance(); err != nil {
		return 0, err
	}

	var events []Event
	if err := s.caller.call(s.ctx, &events, "drain"); err != nil {
		return 0, err
	}
	for _, ev := range events {
		if err := s.Dispatch(ev); err != nil {
			s.logger.Warn("event_failed", "widget", ev.Marker, "kind", ev.Kind, "error", err.Error())
		}
	}
	return len(events), nil
}

// Dispatch handles one event.
func (s *Session) Dispatch(ev Event) error {
	w, ok := s.widgets[ev.Marker]
	if !ok {
		return fmt.Errorf("%w: %s", ErrWidgetGone, ev.Marker)
	}
	switch ev.Kind {
	case EventAction:
		a, err := commentfmt.ParseAction(ev.Action)
		if err != nil {
			return err
		}
		return w.Click(a)
	case EventRefresh:
		return w.Refresh()
	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
}

// Run polls every interval until the session context is done. A context
// cancellation is not reported as an error.
func (s *Session) Run(interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.Poll(); err != nil {
				if s.ctx.Err() != nil || errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
		}
	}
}
