package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// endOfText is the --end default: the selection runs to the end of the
// input.
const endOfText = -1

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// rangeFlags selects a span of the input in runes.
type rangeFlags struct {
	start int
	end   int
}

// wrapFlags holds flags for the wrap command.
type wrapFlags struct {
	common commonFlags
	span   rangeFlags
	delim  string
}

// supFlags holds flags for the sup command.
type supFlags struct {
	common commonFlags
	span   rangeFlags
}

// renderFlags holds flags for the render command.
type renderFlags struct {
	common  commonFlags
	output  string
	workers int
	text    bool
	color   bool
	style   string
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common commonFlags
	text   bool
}

// watchFlags holds flags for the watch command.
type watchFlags struct {
	common   commonFlags
	text     bool
	noClear  bool
	debounce string
}

// browseFlags holds flags for the browse command.
type browseFlags struct {
	common      commonFlags
	url         string
	bin         string
	timeout     string
	headless    bool
	headlessSet bool
	noSandbox   bool
	assetPath   string
	poll        string
	duration    string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text, json")
}

// addRangeFlags adds selection flags to a FlagSet.
func addRangeFlags(fs *flag.FlagSet, f *rangeFlags) {
	fs.IntVar(&f.start, "start", 0, "selection start (runes)")
	fs.IntVar(&f.end, "end", endOfText, "selection end (runes, -1 = end of text)")
}

// newFlagSet creates a FlagSet that reports errors to w and prints usage
// through usage.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parse parses args and wraps flag errors in ErrUsage. flag.ErrHelp is
// returned unwrapped.
func parse(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

// parseWrapFlags parses wrap command flags and returns positional args.
func parseWrapFlags(args []string, w io.Writer) (*wrapFlags, []string, error) {
	f := &wrapFlags{}
	fs := newFlagSet("wrap", w, printWrapUsage)
	addCommonFlags(fs, &f.common)
	addRangeFlags(fs, &f.span)
	fs.StringVarP(&f.delim, "delim", "d", "*", "delimiter: *, _, - (or bold, italic, strike)")

	rest, err := parse(fs, args)
	return f, rest, err
}

// parseSupFlags parses sup command flags and returns positional args.
func parseSupFlags(args []string, w io.Writer) (*supFlags, []string, error) {
	f := &supFlags{}
	fs := newFlagSet("sup", w, printSupUsage)
	addCommonFlags(fs, &f.common)
	addRangeFlags(fs, &f.span)

	rest, err := parse(fs, args)
	return f, rest, err
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newFlagSet("render", w, printRenderUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.text, "text", false, "input is plain text: escape HTML, newlines to <br>")
	fs.BoolVar(&f.color, "color", false, "syntax-colour the markup for the terminal")
	fs.StringVar(&f.style, "style", "", "chroma style for --color")

	rest, err := parse(fs, args)
	return f, rest, err
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string, w io.Writer) (*previewFlags, []string, error) {
	f := &previewFlags{}
	fs := newFlagSet("preview", w, printPreviewUsage)
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.text, "text", false, "input is plain text: escape HTML, newlines to <br>")

	rest, err := parse(fs, args)
	return f, rest, err
}

// parseWatchFlags parses watch command flags and returns positional args.
func parseWatchFlags(args []string, w io.Writer) (*watchFlags, []string, error) {
	f := &watchFlags{}
	fs := newFlagSet("watch", w, printWatchUsage)
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.text, "text", false, "input is plain text: escape HTML, newlines to <br>")
	fs.BoolVar(&f.noClear, "no-clear", false, "do not clear the screen between renders")
	fs.StringVar(&f.debounce, "debounce", "", "quiet period before re-rendering (e.g. 150ms)")

	rest, err := parse(fs, args)
	return f, rest, err
}

// parseBrowseFlags parses browse command flags and returns positional args.
func parseBrowseFlags(args []string, w io.Writer) (*browseFlags, []string, error) {
	f := &browseFlags{}
	fs := newFlagSet("browse", w, printBrowseUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.url, "url", "", "page to enhance (default: bundled comment page)")
	fs.StringVar(&f.bin, "bin", "", "Chrome binary")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout (e.g. 30s)")
	fs.BoolVar(&f.headless, "headless", false, "run Chrome without a window")
	fs.BoolVar(&f.noSandbox, "no-sandbox", false, "disable the Chrome sandbox (Docker/CI)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.poll, "poll", "", "event poll interval (e.g. 50ms)")
	fs.StringVar(&f.duration, "duration", "", "stop after this long (default: until interrupted)")

	rest, err := parse(fs, args)
	if err == nil {
		f.headlessSet = fs.Changed("headless")
	}
	return f, rest, err
}
