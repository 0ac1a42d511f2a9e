package commentfmt

import (
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/zeebo/blake3"
)

// Default preview cache timings. Hosts fire several events (click, input,
// blur) for the same content in quick succession; entries only need to
// outlive such a burst.
const (
	DefaultCacheTTL     = 30 * time.Second
	defaultCacheCleanup = time.Minute
)

// PreviewCache memoizes rendered previews by content and theme.
// It is safe for concurrent use.
type PreviewCache struct {
	c *gocache.Cache
}

// NewPreviewCache creates a cache whose entries expire after ttl.
// Panics if ttl <= 0 (programmer error).
func NewPreviewCache(ttl time.Duration) *PreviewCache {
	if ttl <= 0 {
		panic("commentfmt: NewPreviewCache ttl must be positive")
	}
	cleanup := defaultCacheCleanup
	if ttl > cleanup {
		cleanup = ttl
	}
	return &PreviewCache{c: gocache.New(ttl, cleanup)}
}

// Render returns the cached rendering of content, rendering and storing it
// on a miss.
func (p *PreviewCache) Render(content string, theme Theme) string {
	key := cacheKey(content, theme)
	if v, ok := p.c.Get(key); ok {
		if html, ok := v.(string); ok {
			return html
		}
	}
	html := RenderWithTheme(content, theme)
	p.c.Set(key, html, gocache.DefaultExpiration)
	return html
}

// Len returns the number of cached entries, including expired ones not yet
// cleaned up.
func (p *PreviewCache) Len() int {
	return p.c.ItemCount()
}

// Flush drops every entry.
func (p *PreviewCache) Flush() {
	p.c.Flush()
}

// cacheKey hashes the theme and content so keys stay small for long
// comments.
func cacheKey(content string, theme Theme) string {
	h := blake3.New()
	for _, tag := range []Tag{theme.Bold, theme.Italic, theme.Strikethrough} {
		_, _ = h.Write([]byte(tag.Open))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(tag.Close))
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}
