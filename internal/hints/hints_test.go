package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable

import (
	"strings"
	"testing"
)

func stubContainer(t *testing.T, in bool) {
	t.Helper()
	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return in }
}

func TestForBrowserConnect_InCI(t *testing.T) {
	stubContainer(t, false)
	t.Setenv("CI", "true")
	t.Setenv("ROD_NO_SANDBOX", "")
	t.Setenv("ROD_BROWSER_BIN", "")

	hint := ForBrowserConnect()

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint %q lacks prefix", hint)
	}
	if !strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Error("expected ROD_NO_SANDBOX suggestion in CI")
	}
	if !strings.Contains(hint, "ROD_BROWSER_BIN") {
		t.Error("expected ROD_BROWSER_BIN suggestion")
	}
}

func TestForBrowserConnect_InDocker(t *testing.T) {
	stubContainer(t, true)
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITLAB_CI", "")
	t.Setenv("ROD_NO_SANDBOX", "")
	t.Setenv("ROD_BROWSER_BIN", "/usr/bin/chromium")

	hint := ForBrowserConnect()

	if !strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Error("expected ROD_NO_SANDBOX suggestion in Docker")
	}
	if strings.Contains(hint, "ROD_BROWSER_BIN") {
		t.Error("ROD_BROWSER_BIN already set, should not be suggested")
	}
}

func TestForBrowserConnect_NothingToSuggest(t *testing.T) {
	stubContainer(t, true)
	t.Setenv("ROD_NO_SANDBOX", "1")
	t.Setenv("ROD_BROWSER_BIN", "/usr/bin/chromium")

	if hint := ForBrowserConnect(); hint != "" {
		t.Errorf("ForBrowserConnect() = %q, want empty", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "suggests user config path",
			paths:    []string{"work.yaml", "/home/u/.config/go-commentfmt/work.yaml"},
			contains: "or create /home/u/.config/go-commentfmt/work.yaml",
		},
		{
			name:     "windows path",
			paths:    []string{`C:\Users\u\AppData\Roaming\go-commentfmt\work.yaml`},
			contains: "or create",
		},
		{
			name:     "only flag suggestion",
			paths:    []string{"work.yaml"},
			contains: "--config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if hint := ForConfigNotFound(tt.paths); !strings.Contains(hint, tt.contains) {
				t.Errorf("ForConfigNotFound() = %q, want it to contain %q", hint, tt.contains)
			}
		})
	}
}

func TestForColorStyle(t *testing.T) {
	t.Parallel()

	if got := ForColorStyle(nil); got != "" {
		t.Errorf("ForColorStyle(nil) = %q, want empty", got)
	}

	many := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	got := ForColorStyle(many)
	if !strings.HasSuffix(got, "h, ...") {
		t.Errorf("ForColorStyle(many) = %q, want truncated list", got)
	}
	if len(many) != 10 || many[8] != "i" {
		t.Error("ForColorStyle must not modify its argument")
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"page load":   ForPageLoad(),
		"comment box": ForMissingCommentBox(),
		"theme":       ForTheme(),
		"delimiter":   ForDelimiter(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint %q lacks prefix", name, hint)
		}
	}
}
