package gridview

// Axis limits. A worksheet never exceeds these dimensions; the sparse
// span representation means memory scales with customization count,
// not with the grid size.
const (
	// MaxRows is the maximum number of rows in a worksheet.
	MaxRows = 1 << 20

	// MaxColumns is the maximum number of columns in a worksheet.
	MaxColumns = 1 << 14
)

// CellCoordinate identifies a single cell by zero-based row and
// column indices.
type CellCoordinate struct {
	Row, Col int
}

// Cell is a convenience function to create a CellCoordinate.
func Cell(row, col int) CellCoordinate {
	return CellCoordinate{Row: row, Col: col}
}

// Offset returns the coordinate shifted by the given deltas.
func (c CellCoordinate) Offset(dRow, dCol int) CellCoordinate {
	return CellCoordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Clamp returns the coordinate limited to [0, rows) x [0, cols).
func (c CellCoordinate) Clamp(rows, cols int) CellCoordinate {
	return CellCoordinate{
		Row: clampInt(c.Row, 0, rows-1),
		Col: clampInt(c.Col, 0, cols-1),
	}
}

// CellRange is an inclusive rectangle of cells. A valid range is
// normalized: StartRow <= EndRow and StartCol <= EndCol.
type CellRange struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// NewCellRange creates a normalized range from two corner coordinates
// given in any order.
func NewCellRange(a, b CellCoordinate) CellRange {
	return CellRange{
		StartRow: min(a.Row, b.Row),
		StartCol: min(a.Col, b.Col),
		EndRow:   max(a.Row, b.Row),
		EndCol:   max(a.Col, b.Col),
	}
}

// SingleCell returns the range covering exactly one cell.
func SingleCell(c CellCoordinate) CellRange {
	return CellRange{StartRow: c.Row, StartCol: c.Col, EndRow: c.Row, EndCol: c.Col}
}

// TopLeft returns the anchor corner of the range.
func (r CellRange) TopLeft() CellCoordinate {
	return CellCoordinate{Row: r.StartRow, Col: r.StartCol}
}

// BottomRight returns the maximum corner of the range.
func (r CellRange) BottomRight() CellCoordinate {
	return CellCoordinate{Row: r.EndRow, Col: r.EndCol}
}

// RowCount returns the number of rows covered by the range.
func (r CellRange) RowCount() int {
	return r.EndRow - r.StartRow + 1
}

// ColCount returns the number of columns covered by the range.
func (r CellRange) ColCount() int {
	return r.EndCol - r.StartCol + 1
}

// CellCount returns the number of cells covered by the range.
func (r CellRange) CellCount() int {
	return r.RowCount() * r.ColCount()
}

// Contains reports whether the coordinate lies inside the range.
func (r CellRange) Contains(c CellCoordinate) bool {
	return c.Row >= r.StartRow && c.Row <= r.EndRow &&
		c.Col >= r.StartCol && c.Col <= r.EndCol
}

// ContainsRange reports whether other lies entirely inside r.
func (r CellRange) ContainsRange(other CellRange) bool {
	return other.StartRow >= r.StartRow && other.EndRow <= r.EndRow &&
		other.StartCol >= r.StartCol && other.EndCol <= r.EndCol
}

// Intersects reports whether r and other share at least one cell.
func (r CellRange) Intersects(other CellRange) bool {
	return r.StartRow <= other.EndRow && other.StartRow <= r.EndRow &&
		r.StartCol <= other.EndCol && other.StartCol <= r.EndCol
}

// Union returns the smallest range containing both r and other.
func (r CellRange) Union(other CellRange) CellRange {
	return CellRange{
		StartRow: min(r.StartRow, other.StartRow),
		StartCol: min(r.StartCol, other.StartCol),
		EndRow:   max(r.EndRow, other.EndRow),
		EndCol:   max(r.EndCol, other.EndCol),
	}
}

// Clamp returns the range limited to [0, rows) x [0, cols).
func (r CellRange) Clamp(rows, cols int) CellRange {
	return CellRange{
		StartRow: clampInt(r.StartRow, 0, rows-1),
		StartCol: clampInt(r.StartCol, 0, cols-1),
		EndRow:   clampInt(r.EndRow, 0, rows-1),
		EndCol:   clampInt(r.EndCol, 0, cols-1),
	}
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
