package gridview

import (
	"fmt"
	"log/slog"
)

// TileRenderer renders one tile. The capability is supplied by the
// presentation layer; the reference implementation lives in render/.
//
// pixelBounds is the tile's rectangle in screen pixels at the
// bucket's scale; cells is the cell range geometrically covered by
// the tile at render time. Render errors propagate uncaught through
// TilesForViewport; the core never serves stale or wrong content in
// place of a failed render, and retry policy belongs to the caller.
type TileRenderer interface {
	RenderTile(coord TileCoordinate, pixelBounds Rect, cells CellRange, bucket ZoomBucket) (Surface, error)
}

// TileRendererFunc adapts a function to the TileRenderer interface.
type TileRendererFunc func(coord TileCoordinate, pixelBounds Rect, cells CellRange, bucket ZoomBucket) (Surface, error)

// RenderTile implements TileRenderer.
func (f TileRendererFunc) RenderTile(coord TileCoordinate, pixelBounds Rect, cells CellRange, bucket ZoomBucket) (Surface, error) {
	return f(coord, pixelBounds, cells, bucket)
}

// TileManager orchestrates the tile cache and an external renderer to
// serve complete tile sets for a viewport.
//
// The manager guarantees coverage: the union of the cell ranges of
// the tiles returned for a viewport covers every geometrically
// visible cell. The guarantee survives span resizes because a tile's
// cell range is recomputed from the live layout at render time, and
// resizes invalidate every tile from the resized span to the end of
// the axis (all their cell boundaries shift relative to the fixed
// tile grid).
//
// TileManager is not safe for concurrent use.
type TileManager struct {
	layout   *LayoutSolver
	renderer TileRenderer
	cache    *TileCache
	tileSize int
}

// NewTileManager creates a manager over the given layout and
// renderer. Panics if layout or renderer is nil, or if tileSize or
// maxTiles is not positive.
//
// maxTiles must exceed the number of tiles a viewport can cover at
// the highest zoom bucket in use; TilesForViewport rejects a fetch
// that would not fit with ErrTileCapacity.
func NewTileManager(layout *LayoutSolver, renderer TileRenderer, tileSize, maxTiles int) *TileManager {
	if layout == nil {
		panic("gridview: TileManager requires a layout solver")
	}
	if renderer == nil {
		panic("gridview: TileManager requires a renderer")
	}
	if tileSize <= 0 {
		panic(fmt.Sprintf("gridview: tile size must be positive, got %d", tileSize))
	}
	return &TileManager{
		layout:   layout,
		renderer: renderer,
		cache:    NewTileCache(maxTiles),
		tileSize: tileSize,
	}
}

// TileSize returns the tile edge length in screen pixels.
func (m *TileManager) TileSize() int { return m.tileSize }

// Cache returns the tile cache. Exposed for inspection; the manager
// remains the only writer.
func (m *TileManager) Cache() *TileCache { return m.cache }

// CellRangeForTile returns the cell range a tile geometrically covers
// at the bucket's effective scale, from the current layout.
func (m *TileManager) CellRangeForTile(coord TileCoordinate, bucket ZoomBucket) CellRange {
	extent := bucket.TileWorksheetExtent(m.tileSize)
	worksheet := RectXYWH(
		float64(coord.Col)*extent,
		float64(coord.Row)*extent,
		extent,
		extent,
	)
	return m.layout.VisibleRange(worksheet)
}

// TilesForViewport returns a tile for every tile coordinate covering
// the viewport, rendering on cache miss or staleness.
//
// viewport is in worksheet space. For each covering coordinate the
// cached tile is returned if still valid; otherwise the cell range is
// recomputed from the live layout, the renderer is invoked, and the
// fresh tile replaces the stale one. A renderer error aborts the walk
// and propagates; tiles already fetched stay cached.
//
// A viewport needing more tiles than the cache capacity is rejected
// with ErrTileCapacity: filling it would evict tiles from this same
// result set, handing the caller disposed surfaces.
func (m *TileManager) TilesForViewport(viewport Rect, bucket ZoomBucket) ([]*Tile, error) {
	screen := viewport.Scale(bucket.Factor())
	coords := TilesInRect(screen, m.tileSize)
	if len(coords) > m.cache.Capacity() {
		return nil, fmt.Errorf("%w: %d tiles needed, capacity %d",
			ErrTileCapacity, len(coords), m.cache.Capacity())
	}

	tiles := make([]*Tile, 0, len(coords))
	for _, coord := range coords {
		key := TileKey{Coord: coord, Bucket: bucket}
		if tile, ok := m.cache.Get(key); ok && tile.Valid() {
			tiles = append(tiles, tile)
			continue
		}

		cells := m.CellRangeForTile(coord, bucket)
		bounds := coord.PixelBounds(m.tileSize)
		surface, err := m.renderer.RenderTile(coord, bounds, cells, bucket)
		if err != nil {
			return nil, fmt.Errorf("render tile %v at %v: %w", coord, bucket, err)
		}
		Logger().Debug("tile rendered",
			slog.Int("tileRow", coord.Row),
			slog.Int("tileCol", coord.Col),
			slog.String("bucket", bucket.String()))

		tile := NewTile(surface, cells)
		m.cache.Put(key, tile)
		tiles = append(tiles, tile)
	}
	return tiles, nil
}

// InvalidateRange marks stale every cached tile whose cell range
// intersects r.
func (m *TileManager) InvalidateRange(r CellRange) {
	m.cache.InvalidateRange(r)
}

// InvalidateZoomBucket marks stale every cached tile rendered at
// bucket.
func (m *TileManager) InvalidateZoomBucket(bucket ZoomBucket) {
	m.cache.InvalidateZoomBucket(bucket)
}

// InvalidateAll marks every cached tile stale.
func (m *TileManager) InvalidateAll() {
	m.cache.InvalidateAll()
}

// ClearCache disposes and removes every cached tile.
func (m *TileManager) ClearCache() {
	m.cache.Clear()
}

// Dispose tears the manager down, releasing every cached tile.
// Idempotent.
func (m *TileManager) Dispose() {
	m.cache.Dispose()
}
