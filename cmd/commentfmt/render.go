package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-commentfmt/internal/fileutil"
	"github.com/alnah/go-commentfmt/internal/hints"
	"github.com/alnah/go-commentfmt/internal/termview"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// runRender renders preview markup for stdin or for each file argument.
// Several files render concurrently.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if flags.workers < 0 {
		return fmt.Errorf("%w: --workers must be >= 0, got %d", ErrUsage, flags.workers)
	}
	a, err := newApp(&flags.common, env)
	if err != nil {
		return err
	}

	style := flags.style
	if style == "" {
		style = a.cfg.Render.ColorStyle
	}
	if flags.color && !termview.HasStyle(style) {
		return fmt.Errorf("%w: %q%s", termview.ErrUnknownStyle, style, hints.ForColorStyle(termview.StyleNames()))
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		a.logger.Debug(fmt.Sprintf(format, args...))
	}))
	defer undo()

	if len(positional) == 0 || (len(positional) == 1 && positional[0] == "-") {
		if flags.output != "" {
			return fmt.Errorf("%w: --output needs file arguments", ErrUsage)
		}
		content, err := readSource(nil, env)
		if err != nil {
			return err
		}
		return a.emitMarkup(env, a.renderInput(content, flags.text), flags.color, style)
	}

	jobs, err := planJobs(positional, flags.output)
	if err != nil {
		return err
	}

	workers := resolvePoolSize(flags.workers, a.cfg.Render.Workers)
	a.logger.Debug("render_batch", "files", len(jobs), "workers", workers)

	results := renderBatch(ctx, jobs, workers, func(_ context.Context, job renderJob) (string, error) {
		content, err := fileutil.ReadFile(job.InputPath, nil)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		html := a.renderInput(content, flags.text)
		if job.OutputPath == "" {
			return html, nil
		}
		// #nosec G306 -- previews are meant to be readable
		if err := os.WriteFile(job.OutputPath, []byte(html+"\n"), filePermissions); err != nil {
			return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return html, nil
	})

	failed := a.printResults(env, results, flags)
	if failed > 0 {
		return fmt.Errorf("%d render(s) failed", failed)
	}
	return nil
}

// planJobs maps inputs to output paths. With outDir, each input becomes
// outDir/<name>.html; otherwise results go to stdout.
func planJobs(inputs []string, outDir string) ([]renderJob, error) {
	if outDir != "" {
		if err := os.MkdirAll(outDir, dirPermissions); err != nil {
			return nil, fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err)
		}
	}

	jobs := make([]renderJob, 0, len(inputs))
	seen := make(map[string]string, len(inputs))
	for _, in := range inputs {
		if in == "-" {
			return nil, fmt.Errorf("%w: stdin cannot be mixed with file arguments", ErrUsage)
		}
		job := renderJob{InputPath: in}
		if outDir != "" {
			base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
			job.OutputPath = filepath.Join(outDir, base+".html")
			if prev, ok := seen[job.OutputPath]; ok {
				return nil, fmt.Errorf("%w: %s and %s both write %s", ErrUsage, prev, in, job.OutputPath)
			}
			seen[job.OutputPath] = in
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// printResults reports results in input order and returns the failure
// count. Markup rendered for stdout is printed here, after the batch, so
// output from different files never interleaves.
func (a *app) printResults(env *Environment, results []renderResult, flags *renderFlags) int {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if r.OutputPath == "" {
			if err := a.emitMarkup(env, r.HTML, flags.color, flags.style); err != nil {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, err)
			}
			continue
		}

		if flags.common.quiet {
			continue
		}
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Microsecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	failed := countFailed(results)
	if !flags.common.quiet && len(results) > 1 && flags.output != "" {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}
	return failed
}

// emitMarkup prints html to stdout, coloured with the chroma style when
// color is set.
func (a *app) emitMarkup(env *Environment, html string, color bool, style string) error {
	if !color {
		return writeText(env.Stdout, html)
	}
	if style == "" {
		style = a.cfg.Render.ColorStyle
	}
	var buf bytes.Buffer
	if err := termview.Highlight(&buf, html, style); err != nil {
		return err
	}
	return writeText(env.Stdout, buf.String())
}
