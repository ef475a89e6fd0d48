package texture

import (
	"image"
	"log/slog"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is the number of decoded textures kept in memory.
const DefaultCacheSize = 64

// Resolver resolves a texture name to a decoded RGBA image.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Cache is a concurrency-safe LRU of decoded textures.
type Cache struct {
	items *lru.Cache // path -> *image.NRGBA, nil for failed loads
	index *Index
}

// NewCache creates a texture cache backed by the given index. size <= 0
// uses DefaultCacheSize.
func NewCache(index *Index, size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	items, _ := lru.New(size) // only fails for size <= 0
	return &Cache{items: items, index: index}
}

// Resolve loads and caches a texture by name. Returns nil if not found or
// undecodable; failures are logged once per path.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	if texName == "" {
		return nil
	}
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil
	}

	if v, ok := c.items.Get(path); ok {
		img, _ := v.(*image.NRGBA)
		return img
	}

	img, err := LoadTexture(path)
	if err != nil {
		slog.Warn("failed to load texture", "name", texName, "path", path, "error", err)
		img = nil
	}
	c.items.Add(path, img)
	return img
}

// Len is the number of cached entries.
func (c *Cache) Len() int {
	return c.items.Len()
}
