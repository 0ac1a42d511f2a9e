package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnah/go-commentfmt/internal/assets"
	"github.com/alnah/go-commentfmt/internal/browser"
	"github.com/alnah/go-commentfmt/internal/fileutil"
	"github.com/alnah/go-commentfmt/internal/hints"
)

// runBrowse opens the comment page in Chrome, enhances every comment box
// with the formatting toolbar and serves its events until interrupted.
func runBrowse(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBrowseFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: browse takes no arguments (use --url)", ErrUsage)
	}
	a, err := newApp(&flags.common, env)
	if err != nil {
		return err
	}
	mergeBrowseFlags(flags, a)
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	poll, err := optionalDuration("--poll", flags.poll)
	if err != nil {
		return err
	}
	duration, err := optionalDuration("--duration", flags.duration)
	if err != nil {
		return err
	}
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	loader := env.AssetLoader
	if loader == nil {
		if loader, err = assets.NewAssetResolver(a.cfg.Assets.BasePath); err != nil {
			return err
		}
	}

	url := a.cfg.Browser.URL
	bundle, err := assets.LoadBundle(loader, assets.DefaultName, url == "")
	if err != nil {
		return err
	}
	if url == "" {
		path, cleanup, err := fileutil.WriteTempFile(bundle.Page, "html")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		defer cleanup()
		if url, err = fileutil.FileURL(path); err != nil {
			return err
		}
	}

	host := browser.NewHost(browser.Options{
		Bin:       a.cfg.Browser.Bin,
		NoSandbox: a.cfg.Browser.NoSandbox,
		Headless:  a.cfg.Headless(),
		Timeout:   a.cfg.BrowserTimeout(),
	}, a.logger)
	defer func() {
		if err := host.Close(); err != nil {
			a.logger.Warn("browser_close_failed", "error", err)
		}
	}()

	page, err := host.Open(ctx, url)
	if err != nil {
		return withBrowserHint(err)
	}

	session, err := browser.NewSession(ctx, page, bundle, a.formatter, a.logger)
	if err != nil {
		return err
	}
	widgets, err := session.Enhance()
	if err != nil {
		return err
	}
	if len(widgets) == 0 {
		a.logger.Warn("no_comment_box", "url", url, "hint", hints.ForMissingCommentBox())
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Enhanced %d comment box(es) on %s\n", len(widgets), url)
		if duration == 0 {
			fmt.Fprintln(env.Stdout, "Press Ctrl+C to quit.")
		}
	}

	return session.Run(poll)
}

// mergeBrowseFlags merges CLI flags into config. CLI values override config values.
func mergeBrowseFlags(flags *browseFlags, a *app) {
	if flags.url != "" {
		a.cfg.Browser.URL = flags.url
	}
	if flags.bin != "" {
		a.cfg.Browser.Bin = flags.bin
	}
	if flags.timeout != "" {
		a.cfg.Browser.Timeout = flags.timeout
	}
	if flags.noSandbox {
		a.cfg.Browser.NoSandbox = true
	}
	if flags.headlessSet {
		headless := flags.headless
		a.cfg.Browser.Headless = &headless
	}
	if flags.assetPath != "" {
		a.cfg.Assets.BasePath = flags.assetPath
	}
}

// optionalDuration parses a duration flag. Empty means zero.
func optionalDuration(name, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrUsage, name, value)
	}
	return d, nil
}

// withBrowserHint appends the hint matching a browser error.
func withBrowserHint(err error) error {
	switch {
	case errors.Is(err, browser.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, browser.ErrPageLoad):
		return fmt.Errorf("%w%s", err, hints.ForPageLoad())
	}
	return err
}
