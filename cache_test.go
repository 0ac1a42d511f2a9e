package commentfmt

import (
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestPreviewCache - Memoized rendering
// ---------------------------------------------------------------------------

func TestPreviewCache_Render(t *testing.T) {
	t.Parallel()

	c := NewPreviewCache(time.Minute)
	theme := DefaultTheme()

	first := c.Render("*a*", theme)
	second := c.Render("*a*", theme)
	if first != second || first != Render("*a*") {
		t.Errorf("Render() = %q then %q, want %q", first, second, Render("*a*"))
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	other := c.Render("*a*", ClassTheme("cf-"))
	if other == first {
		t.Error("themes share a cache entry")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	c.Flush()
	if c.Len() != 0 {
		t.Errorf("Len() after Flush = %d, want 0", c.Len())
	}
}

func TestPreviewCache_FormatterUsesCache(t *testing.T) {
	t.Parallel()

	c := NewPreviewCache(time.Minute)
	f := New(WithPreviewCache(c))

	if _, err := f.Preview(NewTextSurface("_x_")); err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	if _, err := f.Preview(NewTextSurface("<br>")); err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (hidden previews are not rendered)", c.Len())
	}
}

func TestNewPreviewCache_PanicsOnZeroTTL(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero ttl")
		}
	}()
	NewPreviewCache(0)
}

func TestCacheKey_SeparatesContentFromTags(t *testing.T) {
	t.Parallel()

	a := ClassTheme("x")
	b := a
	b.Strikethrough.Close = a.Strikethrough.Close + "y"

	if cacheKey("z", a) == cacheKey("z", b) {
		t.Error("different themes produced the same key")
	}
	if cacheKey("yz", a) == cacheKey("z", b) {
		t.Error("tag and content boundary is ambiguous")
	}
}
