package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	commentfmt "github.com/alnah/go-commentfmt"
	"github.com/alnah/go-commentfmt/internal/fileutil"
	"github.com/alnah/go-commentfmt/internal/hints"
)

// runWrap wraps a span of the input in a delimiter pair and prints the new
// content. The inner span (the original text, now between the delimiters)
// goes to stderr unless --quiet.
func runWrap(_ context.Context, args []string, env *Environment) error {
	flags, positional, err := parseWrapFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	a, err := newApp(&flags.common, env)
	if err != nil {
		return err
	}

	d, err := commentfmt.ParseDelimiter(flags.delim)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForDelimiter())
	}

	content, err := readSource(positional, env)
	if err != nil {
		return err
	}

	surface := commentfmt.NewTextSurface(content)
	if err := surface.Select(flags.span.resolve(content)); err != nil {
		return err
	}
	if err := a.formatter.WrapSelection(surface, d); err != nil {
		return err
	}

	out, _ := surface.Content()
	inner, _ := surface.Selection()
	a.logger.Debug("wrapped", "delim", d.String(), "inner", inner.String())

	if err := writeText(env.Stdout, out); err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "selection: %s\n", inner)
	}
	return nil
}

// runSup toggles superscript on a span of the text argument (or stdin for
// "-" or no argument) and prints the result.
func runSup(_ context.Context, args []string, env *Environment) error {
	flags, positional, err := parseSupFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	a, err := newApp(&flags.common, env)
	if err != nil {
		return err
	}

	var text string
	switch {
	case len(positional) > 1:
		return fmt.Errorf("%w: sup takes one text argument, got %d", ErrUsage, len(positional))
	case len(positional) == 1 && positional[0] != "-":
		text = positional[0]
	default:
		if text, err = readSource(nil, env); err != nil {
			return err
		}
		text = strings.TrimRight(text, "\r\n")
	}

	surface := commentfmt.NewTextSurface(text)
	if err := surface.Select(flags.span.resolve(text)); err != nil {
		return err
	}
	direction := commentfmt.DetectSuperscript(surface.Selected())
	if err := a.formatter.SuperscriptSelection(surface); err != nil {
		return err
	}

	out, _ := surface.Content()
	a.logger.Debug("superscript_toggled", "direction", direction.String())
	return writeText(env.Stdout, out)
}

// resolve converts the flags into a span of text. endOfText selects to the
// end, leaving out a trailing line break.
func (r rangeFlags) resolve(text string) commentfmt.Span {
	end := r.end
	if end == endOfText {
		end = utf8.RuneCountInString(strings.TrimRight(text, "\r\n"))
	}
	return commentfmt.Span{Start: r.start, End: end}
}

// readSource reads the single positional input. No argument or "-" reads
// stdin.
func readSource(positional []string, env *Environment) (string, error) {
	if len(positional) > 1 {
		return "", fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(positional))
	}
	path := "-"
	if len(positional) == 1 {
		path = positional[0]
	}
	content, err := fileutil.ReadFile(path, env.Stdin)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadInput, displayName(path), err)
	}
	return content, nil
}

// writeText writes s followed by a newline unless it already ends in one.
func writeText(w io.Writer, s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
