package gridview

import (
	"testing"
	"time"
)

func testLayout(t testing.TB) *LayoutSolver {
	t.Helper()
	rows := NewSpanList(10000, 24)
	cols := NewSpanList(1000, 100)
	return NewLayoutSolver(rows, cols)
}

func TestLayoutEdges(t *testing.T) {
	l := testLayout(t)
	if err := l.Rows().SetSize(500, 48); err != nil {
		t.Fatal(err)
	}

	if got := l.RowTop(501); got != 12048 {
		t.Errorf("RowTop(501) = %v, want 12048", got)
	}
	if got := l.RowEnd(500); got != 12048 {
		t.Errorf("RowEnd(500) = %v, want 12048", got)
	}
	if got := l.RowAt(12048); got != 501 {
		t.Errorf("RowAt(12048) = %d, want 501", got)
	}
	if got := l.ColumnLeft(3); got != 300 {
		t.Errorf("ColumnLeft(3) = %v, want 300", got)
	}
	if got := l.ColumnEnd(3); got != 400 {
		t.Errorf("ColumnEnd(3) = %v, want 400", got)
	}
	if got := l.ColumnAt(399.9); got != 3 {
		t.Errorf("ColumnAt(399.9) = %d, want 3", got)
	}
	if got := l.TotalHeight(); got != 24*10000+24 {
		t.Errorf("TotalHeight() = %v, want %v", got, 24*10000+24.0)
	}
	if got := l.TotalWidth(); got != 100000 {
		t.Errorf("TotalWidth() = %v, want 100000", got)
	}
}

func TestCellBounds(t *testing.T) {
	l := testLayout(t)

	got := l.CellBounds(Cell(2, 3))
	want := RectXYWH(300, 48, 100, 24)
	if got != want {
		t.Errorf("CellBounds(2,3) = %+v, want %+v", got, want)
	}

	// Out-of-range coordinates clamp to the nearest cell.
	got = l.CellBounds(Cell(-5, -5))
	want = RectXYWH(0, 0, 100, 24)
	if got != want {
		t.Errorf("CellBounds(-5,-5) = %+v, want %+v", got, want)
	}
}

func TestRangeBounds(t *testing.T) {
	l := testLayout(t)

	got := l.RangeBounds(CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 3})
	want := RectXYWH(100, 24, 300, 48)
	if got != want {
		t.Errorf("RangeBounds = %+v, want %+v", got, want)
	}
}

func TestVisibleSpans(t *testing.T) {
	l := testLayout(t)

	tests := []struct {
		name          string
		start, length float64
		wantStart     int
		wantEnd       int
	}{
		{"first rows", 0, 100, 0, 4},
		{"interior", 30, 30, 1, 2},
		{"edge exactly on boundary excluded", 0, 48, 0, 1},
		{"edge just past boundary included", 0, 48.5, 0, 2},
		{"single pixel", 25, 1, 1, 1},
		{"negative start clamps", -100, 120, 0, 0},
		{"past end clamps", 1e9, 100, 9999, 9999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.VisibleRows(tt.start, tt.length)
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("VisibleRows(%v, %v) = [%d, %d], want [%d, %d]",
					tt.start, tt.length, got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestVisibleRange(t *testing.T) {
	l := testLayout(t)

	got := l.VisibleRange(RectXYWH(150, 30, 300, 60))
	want := CellRange{StartRow: 1, StartCol: 1, EndRow: 3, EndCol: 4}
	if got != want {
		t.Errorf("VisibleRange = %+v, want %+v", got, want)
	}
}

// The visible-range contract is under 2ms per query; a heavily
// customized axis must stay orders of magnitude below that.
func TestVisibleRangeLatency(t *testing.T) {
	if testing.Short() {
		t.Skip("latency check skipped in short mode")
	}
	rows := NewSpanList(1<<20, 24)
	cols := NewSpanList(1<<14, 100)
	for i := 0; i < 5000; i++ {
		_ = rows.SetSize(i*97%(1<<20), 48)
		_ = cols.SetSize(i*31%(1<<14), 150)
	}
	l := NewLayoutSolver(rows, cols)

	const iters = 1000
	start := time.Now()
	for i := 0; i < iters; i++ {
		l.VisibleRange(RectXYWH(float64(i)*977, float64(i)*311, 1920, 1080))
	}
	perQuery := time.Since(start) / iters
	if perQuery > 2*time.Millisecond {
		t.Errorf("VisibleRange took %v per query, want < 2ms", perQuery)
	}
}

func BenchmarkVisibleRange(b *testing.B) {
	rows := NewSpanList(1<<20, 24)
	cols := NewSpanList(1<<14, 100)
	for i := 0; i < 5000; i++ {
		_ = rows.SetSize(i*97%(1<<20), 48)
		_ = cols.SetSize(i*31%(1<<14), 150)
	}
	l := NewLayoutSolver(rows, cols)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.VisibleRange(RectXYWH(float64(i%100000)*193, float64(i%100000)*71, 1920, 1080))
	}
}
