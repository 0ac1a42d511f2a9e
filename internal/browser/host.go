package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-commentfmt/internal/process"
)

// DefaultTimeout bounds page loads when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Options configures how Chrome is launched.
type Options struct {
	Bin       string        // browser binary; empty lets rod find or download one
	NoSandbox bool          // required in most containers and CI runners
	Headless  bool          // run without a window
	Timeout   time.Duration // page load timeout
}

// Host owns one Chrome process.
type Host struct {
	opts     Options
	logger   *slog.Logger
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewHost creates a Host. Chrome is launched lazily by Open.
func NewHost(opts Options, logger *slog.Logger) *Host {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Host{opts: opts, logger: logger}
}

// ensureBrowser lazily launches and connects to the browser.
func (h *Host) ensureBrowser() error {
	if h.browser != nil {
		return nil
	}

	l := launcher.New().Headless(h.opts.Headless)
	if h.opts.Bin != "" {
		l = l.Bin(h.opts.Bin)
	}
	if h.opts.NoSandbox {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	h.launcher, h.browser = l, b
	h.logger.Debug("browser_connected", "control_url", u, "headless", h.opts.Headless)
	return nil
}

// Open navigates a new tab to url and waits for it to load.
func (h *Host) Open(ctx context.Context, url string) (*rod.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := h.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := h.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	timeout := h.opts.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if timeout = time.Until(deadline); timeout <= 0 {
			_ = page.Close()
			return nil, context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	h.logger.Debug("page_loaded", "url", url)
	return page.Context(ctx), nil
}

// Close shuts the browser down and removes its profile directory.
func (h *Host) Close() error {
	if h.browser == nil {
		return nil
	}
	err := h.browser.Close()
	if err != nil {
		// Cleanup waits for Chrome to exit.
		h.logger.Debug("browser_kill", "pid", h.launcher.PID(), "error", err)
		process.KillTree(h.launcher.PID())
	}
	h.launcher.Cleanup()
	h.browser, h.launcher = nil, nil
	return err
}
