package gridview

import (
	"errors"
	"testing"
)

func TestMergeAndResolve(t *testing.T) {
	m := NewMergedCellRegistry()
	r := CellRange{StartRow: 1, StartCol: 1, EndRow: 3, EndCol: 2}
	if err := m.Merge(r); err != nil {
		t.Fatalf("Merge(%+v) returned %v", r, err)
	}

	if got := m.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	region := m.Region(Cell(2, 2))
	if region == nil {
		t.Fatal("Region(2,2) = nil, want the merged region")
	}
	if region.Anchor != Cell(1, 1) {
		t.Errorf("Region(2,2).Anchor = %+v, want (1,1)", region.Anchor)
	}
	if region.Range != r {
		t.Errorf("Region(2,2).Range = %+v, want %+v", region.Range, r)
	}

	if !m.IsMerged(Cell(3, 1)) {
		t.Error("IsMerged(3,1) = false, want true")
	}
	if m.IsMerged(Cell(0, 0)) {
		t.Error("IsMerged(0,0) = true, want false")
	}
	if !m.IsAnchor(Cell(1, 1)) {
		t.Error("IsAnchor(1,1) = false, want true")
	}
	if m.IsAnchor(Cell(2, 1)) {
		t.Error("IsAnchor(2,1) = true, want false")
	}
}

func TestMergeRejectsOverlap(t *testing.T) {
	m := NewMergedCellRegistry()
	if err := m.Merge(CellRange{EndRow: 1, EndCol: 1}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		r    CellRange
	}{
		{"identical", CellRange{EndRow: 1, EndCol: 1}},
		{"partial overlap", CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}},
		{"containing", CellRange{EndRow: 5, EndCol: 5}},
		{"contained", CellRange{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.Merge(tt.r); !errors.Is(err, ErrMergeConflict) {
				t.Errorf("Merge(%+v) = %v, want ErrMergeConflict", tt.r, err)
			}
		})
	}

	// A rejected merge leaves the registry unchanged.
	if got := m.Len(); got != 1 {
		t.Errorf("Len() after rejected merges = %d, want 1", got)
	}
}

func TestMergeRejectsSingleCell(t *testing.T) {
	m := NewMergedCellRegistry()
	if err := m.Merge(SingleCell(Cell(2, 2))); !errors.Is(err, ErrMergeRange) {
		t.Errorf("Merge(single cell) = %v, want ErrMergeRange", err)
	}
	if err := m.Merge(CellRange{StartRow: -1, EndRow: 1, EndCol: 1}); !errors.Is(err, ErrIndexRange) {
		t.Errorf("Merge(negative range) = %v, want ErrIndexRange", err)
	}
}

func TestUnmerge(t *testing.T) {
	m := NewMergedCellRegistry()
	if err := m.Merge(CellRange{EndRow: 2, EndCol: 2}); err != nil {
		t.Fatal(err)
	}

	// Unmerge resolves from any covered cell, not just the anchor.
	if !m.Unmerge(Cell(2, 1)) {
		t.Fatal("Unmerge(2,1) = false, want true")
	}
	if m.IsMerged(Cell(0, 0)) {
		t.Error("IsMerged(0,0) after unmerge = true, want false")
	}
	if m.Unmerge(Cell(0, 0)) {
		t.Error("Unmerge(0,0) on empty registry = true, want false")
	}

	// The freed cells can merge again.
	if err := m.Merge(CellRange{EndRow: 1, EndCol: 1}); err != nil {
		t.Errorf("Merge after unmerge returned %v", err)
	}
}

func TestRegionsInRange(t *testing.T) {
	m := NewMergedCellRegistry()
	a := CellRange{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1}
	b := CellRange{StartRow: 2, StartCol: 2, EndRow: 3, EndCol: 3}
	c := CellRange{StartRow: 10, StartCol: 0, EndRow: 11, EndCol: 0}
	for _, r := range []CellRange{a, b, c} {
		if err := m.Merge(r); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name  string
		query CellRange
		want  int
	}{
		{"hits two", CellRange{EndRow: 2, EndCol: 2}, 2},
		{"hits one", CellRange{StartRow: 3, StartCol: 3, EndRow: 5, EndCol: 5}, 1},
		{"hits none", CellRange{StartRow: 5, StartCol: 5, EndRow: 6, EndCol: 6}, 0},
		{"whole-column query", CellRange{StartRow: 0, StartCol: 0, EndRow: 1 << 19, EndCol: 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.RegionsInRange(tt.query); len(got) != tt.want {
				t.Errorf("RegionsInRange(%+v) returned %d regions, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}
