// Package gridview provides a virtualized rendering core for
// spreadsheet-style grids.
//
// # Overview
//
// gridview makes very large grids (up to 2^20 rows by 2^14 columns)
// tractable inside an interactive viewport. It provides variable-span
// row/column layout with O(log k) position queries (k = number of
// customized spans), a zoom-bucketed LRU tile cache, geometric hit
// testing, merged-cell tracking, and merge-aware selection.
//
// # Quick Start
//
//	import "github.com/gogrid/gridview"
//
//	ws := gridview.NewWorksheet(10000, 256, renderer)
//	ws.ResizeColumn(3, 180)
//
//	viewport := gridview.NewRect(gridview.Pt(0, 0), gridview.Pt(1024, 768))
//	tiles, err := ws.TilesForViewport(viewport, gridview.ZoomNormal)
//
// # Architecture
//
// The package is organized into:
//   - Public API: Worksheet, SpanList, LayoutSolver, TileManager,
//     TileCache, HitTester, SelectionController, MergedCellRegistry
//   - Internal: order (order-statistics index over sparse span
//     overrides), lru (intrusive LRU list backing the tile cache)
//   - render/: a reference CPU tile renderer; real presentation
//     layers inject their own TileRenderer
//
// # Coordinate Systems
//
// Three coordinate spaces appear in the API:
//   - Cell space: (row, column) indices, zero-based.
//   - Worksheet space: pixel positions at zoom 1.0, origin at the
//     top-left of cell (0, 0). X increases right, Y increases down.
//   - Screen space: worksheet space scaled by the zoom factor and
//     offset by the scroll position, with header bands on top.
//
// # Concurrency
//
// A Worksheet and everything it owns (span lists, tile cache, merge
// registry, selection state) belong to a single goroutine, normally
// the one driving the host paint loop. Nothing blocks or suspends;
// every operation completes synchronously within a frame. Only
// SetLogger is safe to call from other goroutines.
//
// # Resource Ownership
//
// A Tile's rendered surface transfers ownership to the TileCache on
// insertion; the cache is the sole disposer (on eviction, Clear, or
// manager teardown). Callers must not retain a Tile across an
// invalidation boundary without re-fetching it from the TileManager.
package gridview
