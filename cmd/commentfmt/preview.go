package main

import (
	"context"
	"fmt"
	"io"
	"time"

	commentfmt "github.com/alnah/go-commentfmt"
	"github.com/alnah/go-commentfmt/internal/termview"
	"github.com/alnah/go-commentfmt/internal/watch"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// runPreview renders the input to the terminal with ANSI styles.
func runPreview(_ context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	a, err := newApp(&flags.common, env)
	if err != nil {
		return err
	}

	content, err := readSource(positional, env)
	if err != nil {
		return err
	}
	return a.writePreview(env.Stdout, content, flags.text)
}

// runWatch re-renders a file to the terminal every time it is saved.
func runWatch(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseWatchFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 || positional[0] == "-" {
		return fmt.Errorf("%w: watch takes exactly one file", ErrUsage)
	}
	a, err := newApp(&flags.common, env)
	if err != nil {
		return err
	}

	debounce := a.cfg.Debounce()
	if flags.debounce != "" {
		if debounce, err = time.ParseDuration(flags.debounce); err != nil || debounce < 0 {
			return fmt.Errorf("%w: --debounce %q", ErrUsage, flags.debounce)
		}
	}

	cfg := watch.Config{Path: positional[0], Debounce: debounce, Logger: a.logger}
	return watch.Run(ctx, cfg, func(content string) error {
		if !flags.noClear {
			if _, err := io.WriteString(env.Stdout, clearScreen); err != nil {
				return fmt.Errorf("%w: %v", ErrWriteOutput, err)
			}
		}
		if err := a.writePreview(env.Stdout, content, flags.text); err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "updated %s, watching %s\n", env.Now().Format(time.TimeOnly), positional[0])
		}
		return nil
	})
}

// writePreview renders content and prints it with terminal styles. Content
// whose preview would be hidden prints nothing.
func (a *app) writePreview(w io.Writer, content string, plain bool) error {
	if plain {
		content = commentfmt.EscapeText(content)
	}
	if !commentfmt.PreviewVisible(content) {
		a.logger.Debug("preview_hidden")
		return nil
	}
	if err := termview.New(a.theme).Write(w, a.formatter.Render(content)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
