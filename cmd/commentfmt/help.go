package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: commentfmt <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  wrap       Wrap a span of text in a formatting delimiter")
	fmt.Fprintln(w, "  sup        Toggle Unicode superscript on a span of text")
	fmt.Fprintln(w, "  render     Render preview markup")
	fmt.Fprintln(w, "  preview    Render to the terminal with styles")
	fmt.Fprintln(w, "  watch      Live terminal preview of a file")
	fmt.Fprintln(w, "  browse     Open the comment page in Chrome with the formatting toolbar")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Delimiters: *bold*  _italic_  -strikethrough-")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'commentfmt help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (env: COMMENTFMT_CONFIG)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
}

// printRangeUsage prints the selection flags.
func printRangeUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Selection (rune offsets, half-open):")
	fmt.Fprintln(w, "      --start <n>           Selection start (default 0)")
	fmt.Fprintln(w, "      --end <n>             Selection end (default: end of text)")
}

// printWrapUsage prints usage for the wrap command.
func printWrapUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: commentfmt wrap [flags] [file|-]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Wrap the selected span in a delimiter pair and print the new content.")
	fmt.Fprintln(w, "The span now holding the original text is printed to stderr.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --delim <s>           Delimiter: *, _, - (or bold, italic, strike)")
	printRangeUsage(w)
	printCommonUsage(w)
}

// printSupUsage prints usage for the sup command.
func printSupUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: commentfmt sup [flags] [text|-]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Toggle superscript on the selected span. A span made only of superscript")
	fmt.Fprintln(w, "glyphs (and characters without one) is decoded; anything else is encoded.")
	fmt.Fprintln(w, "An empty span inserts preview.emptySuperscript (default ²).")
	printRangeUsage(w)
	printCommonUsage(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: commentfmt render [flags] [files...|-]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render preview markup. Several files render concurrently.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Write <name>.html files into dir")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --text                Input is plain text: escape HTML, newlines to <br>")
	fmt.Fprintln(w, "      --color               Syntax-colour the markup")
	fmt.Fprintln(w, "      --style <name>        Chroma style for --color (default: render.colorStyle)")
	printCommonUsage(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: commentfmt preview [flags] [file|-]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the input to the terminal with bold, italic and strikethrough styles.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --text                Input is plain text: escape HTML, newlines to <br>")
	printCommonUsage(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: commentfmt watch [flags] <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Re-render the file to the terminal every time it is saved.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --text                Input is plain text: escape HTML, newlines to <br>")
	fmt.Fprintln(w, "      --no-clear            Do not clear the screen between renders")
	fmt.Fprintln(w, "      --debounce <d>        Quiet period before re-rendering (default: watch.debounce)")
	printCommonUsage(w)
}

// printBrowseUsage prints usage for the browse command.
func printBrowseUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: commentfmt browse [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Open a page in Chrome and add B, I, S and A² buttons plus a live preview")
	fmt.Fprintln(w, "to every comment box on it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --url <url>           Page to enhance (default: bundled comment page)")
	fmt.Fprintln(w, "      --headless            Run Chrome without a window")
	fmt.Fprintln(w, "      --bin <path>          Chrome binary (env: ROD_BROWSER_BIN)")
	fmt.Fprintln(w, "      --no-sandbox          Disable the Chrome sandbox (env: ROD_NO_SANDBOX)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Page load timeout (default: browser.timeout)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --poll <d>            Event poll interval (default 50ms)")
	fmt.Fprintln(w, "      --duration <d>        Stop after this long")
	printCommonUsage(w)
}

// helpTopics maps command names to their usage printers.
var helpTopics = map[string]func(io.Writer){
	"wrap":    printWrapUsage,
	"sup":     printSupUsage,
	"render":  printRenderUsage,
	"preview": printPreviewUsage,
	"watch":   printWatchUsage,
	"browse":  printBrowseUsage,
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: commentfmt version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: commentfmt help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		usage, ok := helpTopics[args[0]]
		if !ok {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
			printUsage(env.Stderr)
			return ExitUsage
		}
		usage(env.Stdout)
	}
	return ExitSuccess
}
