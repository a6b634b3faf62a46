package gridview

import (
	"fmt"
	"math"
)

// TileCoordinate addresses one tile in the fixed tile grid laid over
// worksheet space. Both components are >= 0.
type TileCoordinate struct {
	Row, Col int
}

// TileCoordinateFromPixel returns the tile containing a pixel
// position, by floor division. Negative positions (elastic
// overscroll) clamp to the first tile on that axis.
func TileCoordinateFromPixel(p Point, tileSize int) TileCoordinate {
	return TileCoordinate{
		Row: max(0, int(math.Floor(p.Y/float64(tileSize)))),
		Col: max(0, int(math.Floor(p.X/float64(tileSize)))),
	}
}

// PixelBounds returns the pixel rectangle the tile covers.
func (tc TileCoordinate) PixelBounds(tileSize int) Rect {
	s := float64(tileSize)
	return RectXYWH(float64(tc.Col)*s, float64(tc.Row)*s, s, s)
}

// Offset returns the tile coordinate shifted by the given deltas.
func (tc TileCoordinate) Offset(dRow, dCol int) TileCoordinate {
	return TileCoordinate{Row: tc.Row + dRow, Col: tc.Col + dCol}
}

// TilesInRect returns the tile coordinates covering a pixel
// rectangle, in row-major order. An empty rectangle yields no tiles.
func TilesInRect(r Rect, tileSize int) []TileCoordinate {
	if r.IsEmpty() {
		return nil
	}
	first := TileCoordinateFromPixel(r.Min, tileSize)
	// Max is exclusive: a rect ending exactly on a tile boundary does
	// not pull in the next tile.
	s := float64(tileSize)
	lastRow := max(first.Row, int(math.Ceil(r.Max.Y/s))-1)
	lastCol := max(first.Col, int(math.Ceil(r.Max.X/s))-1)

	out := make([]TileCoordinate, 0, (lastRow-first.Row+1)*(lastCol-first.Col+1))
	for row := first.Row; row <= lastRow; row++ {
		for col := first.Col; col <= lastCol; col++ {
			out = append(out, TileCoordinate{Row: row, Col: col})
		}
	}
	return out
}

// TileKey is the cache identity of a tile: where it sits and which
// zoom bucket it was rendered at.
type TileKey struct {
	Coord  TileCoordinate
	Bucket ZoomBucket
}

// Surface is a rendered tile surface. The concrete type is supplied
// by the TileRenderer (the in-repo reference renderer produces a
// *Pixmap; a GPU presentation layer would wrap a texture handle).
//
// Dispose releases the surface's resources and must be idempotent.
type Surface interface {
	Dispose()
}

// Tile wraps one rendered surface together with the cell range it was
// rendered from. Tiles are created by the TileManager on cache miss
// and owned by the TileCache from insertion onward; only the cache
// disposes them.
//
// A tile can be soft-invalidated (the surface is stale but still
// allocated) or hard-disposed (the surface is gone). Consumers must
// treat an invalid tile as a cache miss.
type Tile struct {
	surface   Surface
	cellRange CellRange
	valid     bool
	disposed  bool
}

// NewTile wraps a rendered surface. Panics on a nil surface; a
// renderer that produced nothing must return an error instead.
func NewTile(surface Surface, cellRange CellRange) *Tile {
	if surface == nil {
		panic("gridview: NewTile requires a surface")
	}
	return &Tile{surface: surface, cellRange: cellRange, valid: true}
}

// Surface returns the rendered surface, or nil after disposal.
func (t *Tile) Surface() Surface {
	if t.disposed {
		return nil
	}
	return t.surface
}

// CellRange returns the cell range the surface was rendered from.
func (t *Tile) CellRange() CellRange { return t.cellRange }

// Valid reports whether the surface still reflects current data and
// layout.
func (t *Tile) Valid() bool { return t.valid && !t.disposed }

// Invalidate marks the surface stale without releasing it.
func (t *Tile) Invalidate() { t.valid = false }

// Disposed reports whether the surface has been released.
func (t *Tile) Disposed() bool { return t.disposed }

// Dispose releases the surface. Idempotent.
func (t *Tile) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.valid = false
	t.surface.Dispose()
	t.surface = nil
}

func (tc TileCoordinate) String() string {
	return fmt.Sprintf("tile(%d,%d)", tc.Row, tc.Col)
}
