package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeAsset(t *testing.T, base, rel, content string) {
	t.Helper()
	path := filepath.Join(base, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestNewFilesystemLoader - Base path validation
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "valid directory", path: dir},
		{name: "empty path", path: "", wantErr: ErrInvalidBasePath},
		{name: "missing directory", path: filepath.Join(dir, "missing"), wantErr: ErrInvalidBasePath},
		{name: "regular file", path: file, wantErr: ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewFilesystemLoader(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || loader == nil {
				t.Fatalf("NewFilesystemLoader() = %v, %v", loader, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader_Load - Reading each asset kind
// ---------------------------------------------------------------------------

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "pages/mine.html", "<p>page</p>")
	writeAsset(t, base, "scripts/mine.js", "// script")
	writeAsset(t, base, "styles/mine.css", "p {}")

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	if got, err := loader.LoadPage("mine"); err != nil || got != "<p>page</p>" {
		t.Errorf("LoadPage() = %q, %v", got, err)
	}
	if got, err := loader.LoadScript("mine"); err != nil || got != "// script" {
		t.Errorf("LoadScript() = %q, %v", got, err)
	}
	if got, err := loader.LoadStyle("mine"); err != nil || got != "p {}" {
		t.Errorf("LoadStyle() = %q, %v", got, err)
	}
	if _, err := loader.LoadStyle("other"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(other) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadPage("a.b"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadPage(a.b) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	outside := t.TempDir()
	writeAsset(t, outside, "secret.css", "secret")
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "secret.css"), filepath.Join(base, "styles", "leak.css")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := loader.LoadStyle("leak"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("error = %v, want ErrPathTraversal", err)
	}
}
