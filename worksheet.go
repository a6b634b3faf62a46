package gridview

import "fmt"

// Worksheet wires the core components of one grid view into a single
// explicitly owned object graph: two span axes, the layout solver
// over them, the merge registry, the tile manager, the hit tester,
// and the selection controller. Collaborators receive references;
// nothing here is a singleton.
//
// Span and merge mutations go through the worksheet so the tile cache
// is invalidated in the same step; mutating the axes behind its back
// would leave stale tiles marked valid.
//
// Worksheet is not safe for concurrent use.
type Worksheet struct {
	rows      *SpanList
	cols      *SpanList
	layout    *LayoutSolver
	merges    *MergedCellRegistry
	tiles     *TileManager
	hitTester *HitTester
	selection *SelectionController
}

// NewWorksheet creates a rows x cols worksheet served by the given
// renderer. Panics if the dimensions fall outside (0, MaxRows] x
// (0, MaxColumns], or if the renderer is nil, or if any option value
// is invalid.
func NewWorksheet(rows, cols int, renderer TileRenderer, opts ...Option) *Worksheet {
	if cols <= 0 || cols > MaxColumns {
		panic(fmt.Sprintf("gridview: column count %d out of range (0, %d]", cols, MaxColumns))
	}

	o := defaultWorksheetOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rowSpans := NewSpanList(rows, o.rowSize)
	colSpans := NewSpanList(cols, o.columnSize)
	layout := NewLayoutSolver(rowSpans, colSpans)
	merges := NewMergedCellRegistry()

	return &Worksheet{
		rows:   rowSpans,
		cols:   colSpans,
		layout: layout,
		merges: merges,
		tiles:  NewTileManager(layout, renderer, o.tileSize, o.maxTiles),
		hitTester: NewHitTester(layout, HitTesterConfig{
			RowHeaderWidth:      o.rowHeaderWidth,
			ColumnHeaderHeight:  o.columnHeaderHeight,
			ResizeHandleBand:    o.resizeHandleBand,
			FillHandleSize:      o.fillHandleSize,
			SelectionBorderBand: o.borderBand,
		}),
		selection: NewSelectionController(rows, cols, merges),
	}
}

// Rows returns the row axis.
func (w *Worksheet) Rows() *SpanList { return w.rows }

// Cols returns the column axis.
func (w *Worksheet) Cols() *SpanList { return w.cols }

// Layout returns the layout solver.
func (w *Worksheet) Layout() *LayoutSolver { return w.layout }

// Merges returns the merge registry. Mutate it through the worksheet
// (Merge, Unmerge) so the tile cache stays consistent.
func (w *Worksheet) Merges() *MergedCellRegistry { return w.merges }

// Tiles returns the tile manager.
func (w *Worksheet) Tiles() *TileManager { return w.tiles }

// Selection returns the selection controller.
func (w *Worksheet) Selection() *SelectionController { return w.selection }

// ResizeRow sets the height of row i and invalidates every tile from
// the row to the bottom of the sheet; all their cell boundaries shift
// relative to the fixed tile grid.
func (w *Worksheet) ResizeRow(i int, height float64) error {
	if err := w.rows.SetSize(i, height); err != nil {
		return err
	}
	w.tiles.InvalidateRange(CellRange{
		StartRow: i,
		EndRow:   w.rows.Count() - 1,
		EndCol:   w.cols.Count() - 1,
	})
	return nil
}

// ResizeColumn sets the width of column i and invalidates every tile
// from the column to the right edge of the sheet.
func (w *Worksheet) ResizeColumn(i int, width float64) error {
	if err := w.cols.SetSize(i, width); err != nil {
		return err
	}
	w.tiles.InvalidateRange(CellRange{
		StartCol: i,
		EndRow:   w.rows.Count() - 1,
		EndCol:   w.cols.Count() - 1,
	})
	return nil
}

// Merge creates a merge region covering r and invalidates its tiles.
// Rejects ranges outside the grid, single-cell ranges, and ranges
// overlapping an existing region.
func (w *Worksheet) Merge(r CellRange) error {
	if r.StartRow < 0 || r.StartCol < 0 ||
		r.EndRow >= w.rows.Count() || r.EndCol >= w.cols.Count() {
		return fmt.Errorf("%w: %+v", ErrIndexRange, r)
	}
	if err := w.merges.Merge(r); err != nil {
		return err
	}
	w.tiles.InvalidateRange(r)
	return nil
}

// Unmerge removes the merge region covering c, if any, and
// invalidates its tiles. Returns true if a region was removed.
func (w *Worksheet) Unmerge(c CellCoordinate) bool {
	region := w.merges.Region(c)
	if region == nil {
		return false
	}
	w.merges.Unmerge(c)
	w.tiles.InvalidateRange(region.Range)
	return true
}

// TilesForViewport returns the tiles covering a worksheet-space
// viewport at the given zoom bucket. See TileManager.TilesForViewport.
func (w *Worksheet) TilesForViewport(viewport Rect, bucket ZoomBucket) ([]*Tile, error) {
	return w.tiles.TilesForViewport(viewport, bucket)
}

// HitTest classifies a pointer position, supplying the active
// selection as context for the fill-handle and border checks.
// See HitTester.HitTest.
func (w *Worksheet) HitTest(pos Point, scroll Point, zoom float64) Hit {
	var sel *CellRange
	if r, ok := w.selection.SelectedRange(); ok {
		sel = &r
	}
	return w.hitTester.HitTest(pos, scroll, zoom, sel)
}

// Dispose tears the worksheet down, releasing every cached tile.
// Idempotent.
func (w *Worksheet) Dispose() {
	w.tiles.Dispose()
}
