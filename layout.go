package gridview

// IndexRange is an inclusive run of indices along one axis.
// A range with Len() == 0 means no indices overlap the query.
type IndexRange struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r IndexRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// LayoutSolver composes a row axis and a column axis into 2D geometry
// queries. All queries are O(log k) in the number of span overrides;
// this bound is what keeps scrolling smooth over a 2^20 x 2^14 grid.
//
// The solver holds references to the axes, not copies: span mutations
// through the owning Worksheet are visible to subsequent queries
// immediately.
type LayoutSolver struct {
	rows *SpanList
	cols *SpanList
}

// NewLayoutSolver creates a solver over the given axes.
// Panics if either axis is nil.
func NewLayoutSolver(rows, cols *SpanList) *LayoutSolver {
	if rows == nil || cols == nil {
		panic("gridview: LayoutSolver requires both axes")
	}
	return &LayoutSolver{rows: rows, cols: cols}
}

// Rows returns the row axis.
func (l *LayoutSolver) Rows() *SpanList { return l.rows }

// Cols returns the column axis.
func (l *LayoutSolver) Cols() *SpanList { return l.cols }

// RowTop returns the worksheet-space Y of the top edge of row i.
func (l *LayoutSolver) RowTop(i int) float64 { return l.rows.Position(i) }

// RowEnd returns the worksheet-space Y of the bottom edge of row i.
func (l *LayoutSolver) RowEnd(i int) float64 {
	i = clampInt(i, 0, l.rows.Count()-1)
	return l.rows.Position(i) + l.rows.Size(i)
}

// ColumnLeft returns the worksheet-space X of the left edge of column i.
func (l *LayoutSolver) ColumnLeft(i int) float64 { return l.cols.Position(i) }

// ColumnEnd returns the worksheet-space X of the right edge of column i.
func (l *LayoutSolver) ColumnEnd(i int) float64 {
	i = clampInt(i, 0, l.cols.Count()-1)
	return l.cols.Position(i) + l.cols.Size(i)
}

// RowAt returns the row containing worksheet-space Y. Out-of-range
// positions clamp to the first or last row.
func (l *LayoutSolver) RowAt(y float64) int { return l.rows.IndexAt(y) }

// ColumnAt returns the column containing worksheet-space X.
// Out-of-range positions clamp to the first or last column.
func (l *LayoutSolver) ColumnAt(x float64) int { return l.cols.IndexAt(x) }

// TotalWidth returns the full worksheet width.
func (l *LayoutSolver) TotalWidth() float64 { return l.cols.Total() }

// TotalHeight returns the full worksheet height.
func (l *LayoutSolver) TotalHeight() float64 { return l.rows.Total() }

// CellBounds returns the worksheet-space rectangle of one cell.
// Out-of-range coordinates clamp.
func (l *LayoutSolver) CellBounds(c CellCoordinate) Rect {
	c = c.Clamp(l.rows.Count(), l.cols.Count())
	top := l.rows.Position(c.Row)
	left := l.cols.Position(c.Col)
	return NewRect(
		Pt(left, top),
		Pt(left+l.cols.Size(c.Col), top+l.rows.Size(c.Row)),
	)
}

// RangeBounds returns the worksheet-space rectangle covering every
// cell in the range.
func (l *LayoutSolver) RangeBounds(r CellRange) Rect {
	r = r.Clamp(l.rows.Count(), l.cols.Count())
	return NewRect(
		Pt(l.cols.Position(r.StartCol), l.rows.Position(r.StartRow)),
		Pt(l.ColumnEnd(r.EndCol), l.RowEnd(r.EndRow)),
	)
}

// VisibleRows returns the minimal run of rows overlapping the
// worksheet-space interval [start, start+length).
func (l *LayoutSolver) VisibleRows(start, length float64) IndexRange {
	return visibleSpans(l.rows, start, length)
}

// VisibleColumns returns the minimal run of columns overlapping the
// worksheet-space interval [start, start+length).
func (l *LayoutSolver) VisibleColumns(start, length float64) IndexRange {
	return visibleSpans(l.cols, start, length)
}

// VisibleRange returns the minimal cell range overlapping a
// worksheet-space viewport rectangle.
func (l *LayoutSolver) VisibleRange(viewport Rect) CellRange {
	rows := l.VisibleRows(viewport.Min.Y, viewport.Height())
	cols := l.VisibleColumns(viewport.Min.X, viewport.Width())
	return CellRange{
		StartRow: rows.Start,
		StartCol: cols.Start,
		EndRow:   rows.End,
		EndCol:   cols.End,
	}
}

func visibleSpans(axis *SpanList, start, length float64) IndexRange {
	if length <= 0 {
		i := axis.IndexAt(start)
		return IndexRange{Start: i, End: i - 1}
	}
	first := axis.IndexAt(start)
	// The interval is half-open, so a last edge exactly on a span
	// boundary does not pull in the following span.
	end := start + length
	last := axis.IndexAt(end)
	if last > first && axis.Position(last) >= end {
		last--
	}
	return IndexRange{Start: first, End: last}
}
