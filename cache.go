package ktx

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the texture count a Cache holds when no size is given.
const DefaultCacheSize = 64

// Cache keeps recently decoded textures keyed by file path, so render loops
// requesting the same asset repeatedly skip the decode. Textures are never
// mutated after decode, which makes the shared read-only view safe; callers
// needing exclusive ownership should use Open directly.
//
// The underlying LRU guards its own state, so a Cache may be shared freely
// among goroutines.
type Cache struct {
	textures *lru.Cache[string, *Texture]
}

// NewCache creates a texture cache holding at most size decoded textures.
// size <= 0 selects DefaultCacheSize.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	textures, err := lru.New[string, *Texture](size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateCache, err)
	}

	return &Cache{textures: textures}, nil
}

// Load returns the decoded texture for path, decoding and caching it on the
// first request. Failed decodes are not cached.
func (c *Cache) Load(path string) (*Texture, error) {
	if t, ok := c.textures.Get(path); ok {
		return t, nil
	}

	t, err := Open(path)
	if err != nil {
		return nil, err
	}

	c.textures.Add(path, t)
	return t, nil
}

// Len reports the number of cached textures.
func (c *Cache) Len() int {
	return c.textures.Len()
}

// Purge drops every cached texture.
func (c *Cache) Purge() {
	c.textures.Purge()
}
