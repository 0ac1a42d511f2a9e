// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-commentfmt/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser launch or connection errors.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") == "" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}

	return formatHints(hints)
}

// ForPageLoad returns a hint for pages that do not finish loading.
func ForPageLoad() string {
	return format("raise browser.timeout in the config or pass --timeout")
}

// ForMissingCommentBox returns a hint for pages without a comment box.
func ForMissingCommentBox() string {
	return format("the page needs a #commentbox with a #contenteditable-root inside; open it with --url once comments have loaded")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath2slash(p), "/go-commentfmt/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForTheme returns a hint for rejected themes.
func ForTheme() string {
	return format("each style needs one opening tag and one closing tag; bold markup must not contain '_'")
}

// ForDelimiter returns a hint listing accepted delimiters.
func ForDelimiter() string {
	return format("use *, _ or - (or bold, italic, strike)")
}

// ForColorStyle returns a hint listing a few available styles.
func ForColorStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(available) > 8 {
		available = append(available[:8:8], "...")
	}
	return format("available: " + strings.Join(available, ", "))
}

func filepath2slash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
