package geodesic

import "sync"

// Cache memoizes grids per level. Grids returned by the cache are shared
// and must be treated as read-only.
type Cache struct {
	mu    sync.Mutex
	grids [MaxSize + 1]*Grid
}

// NewCache returns an empty grid cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the grid of the given size, building it (and any missing
// lower levels) on first use. The size is clamped to 0..MaxSize.
func (c *Cache) Get(size int) *Grid {
	size = clampSize(size)

	c.mu.Lock()
	defer c.mu.Unlock()
	if g := c.grids[size]; g != nil {
		return g
	}

	// Start from the largest level we already have below the requested one.
	var g *Grid
	for lvl := size - 1; lvl >= 0; lvl-- {
		if c.grids[lvl] != nil {
			g = c.grids[lvl]
			break
		}
	}
	if g == nil {
		g = sizeZeroGrid()
		c.grids[0] = g
	}
	for g.Size < size {
		g = subdivide(g)
		c.grids[g.Size] = g
	}
	return g
}

// Clear drops all cached grids.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grids = [MaxSize + 1]*Grid{}
}
