package gridview

import (
	"testing"
	"time"
)

// Default geometry throughout: 24px rows, 100px columns, 48px row
// header, 24px column header, 4px resize band.
func newTestHitTester(t testing.TB) *HitTester {
	t.Helper()
	layout := NewLayoutSolver(NewSpanList(10000, 24), NewSpanList(1000, 100))
	return NewHitTester(layout, DefaultHitTesterConfig())
}

func TestHitTestKinds(t *testing.T) {
	h := newTestHitTester(t)

	tests := []struct {
		name   string
		pos    Point
		scroll Point
		zoom   float64
		want   Hit
	}{
		{
			"corner is dead",
			Pt(10, 10), Pt(0, 0), 1,
			Hit{Kind: HitNone},
		},
		{
			"negative position is outside",
			Pt(-1, 50), Pt(0, 0), 1,
			Hit{Kind: HitNone},
		},
		{
			"column header",
			Pt(198, 10), Pt(0, 0), 1,
			Hit{Kind: HitColumnHeader, Index: 1},
		},
		{
			"column resize handle at boundary",
			Pt(247, 10), Pt(0, 0), 1,
			Hit{Kind: HitColumnResizeHandle, Index: 1},
		},
		{
			"column resize handle from following column",
			Pt(250, 10), Pt(0, 0), 1,
			Hit{Kind: HitColumnResizeHandle, Index: 1},
		},
		{
			"row header",
			Pt(10, 60), Pt(0, 0), 1,
			Hit{Kind: HitRowHeader, Index: 1},
		},
		{
			"row resize handle at boundary",
			Pt(10, 71), Pt(0, 0), 1,
			Hit{Kind: HitRowResizeHandle, Index: 1},
		},
		{
			"cell",
			Pt(300, 100), Pt(0, 0), 1,
			Hit{Kind: HitCell, Cell: Cell(3, 2)},
		},
		{
			"cell under scroll",
			Pt(300, 100), Pt(1000, 480), 1,
			Hit{Kind: HitCell, Cell: Cell(23, 12)},
		},
		{
			"cell under zoom",
			Pt(448, 120), Pt(0, 0), 2,
			Hit{Kind: HitCell, Cell: Cell(2, 2)},
		},
		{
			"scrolled column header",
			Pt(198, 10), Pt(1000, 0), 1,
			Hit{Kind: HitColumnHeader, Index: 11},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.HitTest(tt.pos, tt.scroll, tt.zoom, nil)
			if got != tt.want {
				t.Errorf("HitTest(%+v, %+v, %v) = %+v, want %+v", tt.pos, tt.scroll, tt.zoom, got, tt.want)
			}
		})
	}
}

// A position inside a header band never resolves to a cell, even
// under negative (elastic overscroll) scroll offsets.
func TestHitTestHeaderPrecedence(t *testing.T) {
	h := newTestHitTester(t)

	scrolls := []Point{
		Pt(0, 0),
		Pt(-50, -50),
		Pt(-100000, -100000),
		Pt(100000, -3),
	}
	for _, scroll := range scrolls {
		for _, pos := range []Point{Pt(100, 10), Pt(10, 110), Pt(500, 5), Pt(40, 900)} {
			got := h.HitTest(pos, scroll, 1, nil)
			if got.Kind == HitCell {
				t.Errorf("HitTest(%+v, scroll %+v) = cell, want a header kind", pos, scroll)
			}
			switch {
			case pos.Y < DefaultColumnHeaderHeight:
				if got.Kind != HitColumnHeader && got.Kind != HitColumnResizeHandle {
					t.Errorf("HitTest(%+v, scroll %+v) = %v, want a column header kind", pos, scroll, got.Kind)
				}
			case pos.X < DefaultRowHeaderWidth:
				if got.Kind != HitRowHeader && got.Kind != HitRowResizeHandle {
					t.Errorf("HitTest(%+v, scroll %+v) = %v, want a row header kind", pos, scroll, got.Kind)
				}
			}
		}
	}
}

// A zero header dimension hides the band: positions that would land
// in the default 48x24 bands resolve to cells, and no header or
// resize-handle kinds remain reachable.
func TestHitTestHiddenHeaders(t *testing.T) {
	layout := NewLayoutSolver(NewSpanList(100, 24), NewSpanList(100, 100))
	cfg := DefaultHitTesterConfig()
	cfg.RowHeaderWidth = 0
	cfg.ColumnHeaderHeight = 0
	h := NewHitTester(layout, cfg)

	tests := []struct {
		name string
		pos  Point
		want Hit
	}{
		{"former corner", Pt(10, 10), Hit{Kind: HitCell, Cell: Cell(0, 0)}},
		{"former column header band", Pt(150, 10), Hit{Kind: HitCell, Cell: Cell(0, 1)}},
		{"former row header band", Pt(10, 50), Hit{Kind: HitCell, Cell: Cell(2, 0)}},
		{"former column boundary", Pt(100, 10), Hit{Kind: HitCell, Cell: Cell(0, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.HitTest(tt.pos, Pt(0, 0), 1, nil); got != tt.want {
				t.Errorf("HitTest(%v) = %+v, want %+v", tt.pos, got, tt.want)
			}
		})
	}
}

// The resize band follows customized span boundaries.
func TestHitTestResizeHandleAfterResize(t *testing.T) {
	layout := NewLayoutSolver(NewSpanList(100, 24), NewSpanList(100, 100))
	if err := layout.Cols().SetSize(0, 140); err != nil {
		t.Fatal(err)
	}
	h := NewHitTester(layout, DefaultHitTesterConfig())

	// Column 0 now ends at 140; the old boundary at 100 is plain header.
	got := h.HitTest(Pt(48+140, 10), Pt(0, 0), 1, nil)
	if got.Kind != HitColumnResizeHandle || got.Index != 0 {
		t.Errorf("HitTest at moved boundary = %+v, want column resize handle 0", got)
	}
	got = h.HitTest(Pt(48+100, 10), Pt(0, 0), 1, nil)
	if got.Kind != HitColumnHeader {
		t.Errorf("HitTest at stale boundary = %+v, want plain column header", got)
	}
}

func TestHitTestSelectionContext(t *testing.T) {
	h := newTestHitTester(t)
	sel := CellRange{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1}

	tests := []struct {
		name string
		pos  Point
		sel  *CellRange
		want Hit
	}{
		{
			"fill handle at selection corner",
			Pt(248, 72), &sel,
			Hit{Kind: HitFillHandle, Cell: Cell(1, 1)},
		},
		{
			"selection border on right edge",
			Pt(248, 34), &sel,
			Hit{Kind: HitSelectionBorder, Cell: Cell(0, 2)},
		},
		{
			"selection interior is a plain cell",
			Pt(148, 44), &sel,
			Hit{Kind: HitCell, Cell: Cell(0, 1)},
		},
		{
			"no context disables both",
			Pt(248, 72), nil,
			Hit{Kind: HitCell, Cell: Cell(2, 2)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.HitTest(tt.pos, Pt(0, 0), 1, tt.sel)
			if got != tt.want {
				t.Errorf("HitTest(%+v) = %+v, want %+v", tt.pos, got, tt.want)
			}
		})
	}
}

// The hit-test contract is under 100us per query regardless of grid
// size, scroll magnitude, and zoom.
func TestHitTestLatency(t *testing.T) {
	if testing.Short() {
		t.Skip("latency check skipped in short mode")
	}
	rows := NewSpanList(1<<20, 24)
	cols := NewSpanList(1<<14, 100)
	for i := 0; i < 5000; i++ {
		_ = rows.SetSize(i*97%(1<<20), 48)
		_ = cols.SetSize(i*31%(1<<14), 150)
	}
	h := NewHitTester(NewLayoutSolver(rows, cols), DefaultHitTesterConfig())
	sel := CellRange{StartRow: 100, StartCol: 5, EndRow: 200, EndCol: 9}

	const iters = 2000
	start := time.Now()
	for i := 0; i < iters; i++ {
		h.HitTest(Pt(float64(i%1920), float64(i%1080)), Pt(float64(i)*311, float64(i)*977), 1.5, &sel)
	}
	perQuery := time.Since(start) / iters
	if perQuery > 100*time.Microsecond {
		t.Errorf("HitTest took %v per query, want < 100us", perQuery)
	}
}

func BenchmarkHitTest(b *testing.B) {
	rows := NewSpanList(1<<20, 24)
	cols := NewSpanList(1<<14, 100)
	for i := 0; i < 5000; i++ {
		_ = rows.SetSize(i*97%(1<<20), 48)
		_ = cols.SetSize(i*31%(1<<14), 150)
	}
	h := NewHitTester(NewLayoutSolver(rows, cols), DefaultHitTesterConfig())
	sel := CellRange{StartRow: 100, StartCol: 5, EndRow: 200, EndCol: 9}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.HitTest(Pt(float64(i%1920), float64(i%1080)), Pt(123456, 654321), 1.5, &sel)
	}
}
