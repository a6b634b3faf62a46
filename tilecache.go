package gridview

import (
	"fmt"
	"log/slog"

	"github.com/gogrid/gridview/internal/lru"
)

// TileCache is a fixed-capacity LRU store of rendered tiles keyed by
// (tile coordinate, zoom bucket).
//
// The cache exclusively owns every tile it holds: an insert transfers
// ownership, and the cache is the sole disposer, on eviction,
// replacement, removal, Clear, or Dispose. Get promotes recency;
// inserting at capacity evicts and disposes exactly the least
// recently used entry.
//
// Invalidation is soft: InvalidateRange and friends mark matching
// tiles stale without releasing their surfaces, so a following frame
// reuses the slot (and the allocation, when the renderer recycles
// surfaces) instead of thrashing the allocator.
//
// TileCache is not safe for concurrent use.
type TileCache struct {
	capacity int
	entries  map[TileKey]*tileEntry
	recency  *lru.List[TileKey]
	disposed bool
}

type tileEntry struct {
	tile *Tile
	node *lru.Node[TileKey]
}

// NewTileCache creates a cache holding at most capacity tiles.
// Panics if capacity is not positive.
func NewTileCache(capacity int) *TileCache {
	if capacity <= 0 {
		panic(fmt.Sprintf("gridview: tile cache capacity must be positive, got %d", capacity))
	}
	return &TileCache{
		capacity: capacity,
		entries:  make(map[TileKey]*tileEntry),
		recency:  lru.NewList[TileKey](),
	}
}

// Capacity returns the maximum number of tiles the cache holds.
func (c *TileCache) Capacity() int { return c.capacity }

// Len returns the number of tiles currently cached.
func (c *TileCache) Len() int { return len(c.entries) }

// Contains reports whether key is cached, without promoting it.
func (c *TileCache) Contains(key TileKey) bool {
	_, ok := c.entries[key]
	return ok
}

// Get returns the tile stored at key and promotes its recency.
func (c *TileCache) Get(key TileKey) (*Tile, bool) {
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.recency.MoveToFront(entry.node)
	return entry.tile, true
}

// Put inserts a tile, taking ownership of it. A tile already stored
// at key is disposed and replaced. If the insert exceeds capacity,
// the least recently used entry is evicted and disposed.
func (c *TileCache) Put(key TileKey, tile *Tile) {
	if tile == nil {
		panic("gridview: TileCache.Put requires a tile")
	}
	if c.disposed {
		// A dead cache cannot own anything; release immediately.
		tile.Dispose()
		return
	}

	if entry, ok := c.entries[key]; ok {
		entry.tile.Dispose()
		entry.tile = tile
		c.recency.MoveToFront(entry.node)
		return
	}

	c.entries[key] = &tileEntry{
		tile: tile,
		node: c.recency.PushFront(key),
	}

	if len(c.entries) > c.capacity {
		if oldest, ok := c.recency.RemoveOldest(); ok {
			c.entries[oldest].tile.Dispose()
			delete(c.entries, oldest)
			Logger().Debug("tile evicted",
				slog.Int("tileRow", oldest.Coord.Row),
				slog.Int("tileCol", oldest.Coord.Col),
				slog.String("bucket", oldest.Bucket.String()))
		}
	}
}

// Remove evicts and disposes the tile at key.
// Returns true if a tile was removed.
func (c *TileCache) Remove(key TileKey) bool {
	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.recency.Remove(entry.node)
	entry.tile.Dispose()
	delete(c.entries, key)
	return true
}

// InvalidateRange marks stale every tile whose cell range intersects
// r. Tiles stay cached; the manager re-renders them on next fetch.
func (c *TileCache) InvalidateRange(r CellRange) {
	for _, entry := range c.entries {
		if entry.tile.CellRange().Intersects(r) {
			entry.tile.Invalidate()
		}
	}
}

// InvalidateZoomBucket marks stale every tile rendered at bucket.
func (c *TileCache) InvalidateZoomBucket(bucket ZoomBucket) {
	for key, entry := range c.entries {
		if key.Bucket == bucket {
			entry.tile.Invalidate()
		}
	}
}

// InvalidateAll marks every cached tile stale.
func (c *TileCache) InvalidateAll() {
	for _, entry := range c.entries {
		entry.tile.Invalidate()
	}
}

// Clear disposes and removes every cached tile. Idempotent; the cache
// remains usable.
func (c *TileCache) Clear() {
	for _, entry := range c.entries {
		entry.tile.Dispose()
	}
	clear(c.entries)
	c.recency.Clear()
}

// Dispose releases every cached tile and shuts the cache down.
// Idempotent. A disposed cache rejects further inserts by disposing
// the offered tile.
func (c *TileCache) Dispose() {
	if c.disposed {
		return
	}
	c.Clear()
	c.disposed = true
}
