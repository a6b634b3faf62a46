package gridview

import "fmt"

// MergeRegion is a rectangular block of cells treated as one logical
// cell, anchored at its top-left coordinate. Regions are created and
// removed only through a MergedCellRegistry; the registry guarantees
// regions are pairwise non-overlapping.
type MergeRegion struct {
	Anchor CellCoordinate
	Range  CellRange
}

// MergedCellRegistry tracks the merge regions of one worksheet.
//
// Lookup is indexed by row: every row a region touches maps to the
// regions crossing it, so resolving a coordinate scans only the
// handful of regions on its row, never a cell-per-entry map over the
// grid area. With r regions of height h the registry holds O(r*h)
// index entries; worksheet merges are short in practice, so this
// stays proportional to the region count.
type MergedCellRegistry struct {
	anchors map[CellCoordinate]*MergeRegion
	byRow   map[int][]*MergeRegion
}

// NewMergedCellRegistry creates an empty registry.
func NewMergedCellRegistry() *MergedCellRegistry {
	return &MergedCellRegistry{
		anchors: make(map[CellCoordinate]*MergeRegion),
		byRow:   make(map[int][]*MergeRegion),
	}
}

// Len returns the number of merge regions.
func (m *MergedCellRegistry) Len() int { return len(m.anchors) }

// Merge creates a region covering r, anchored at r's top-left cell.
//
// The call is rejected with ErrMergeConflict if r overlaps any
// existing region, and with ErrMergeRange if r covers a single cell.
// On rejection the registry is unchanged.
func (m *MergedCellRegistry) Merge(r CellRange) error {
	if r.StartRow < 0 || r.StartCol < 0 {
		return fmt.Errorf("%w: %+v", ErrIndexRange, r)
	}
	if r.CellCount() < 2 {
		return fmt.Errorf("%w: %+v", ErrMergeRange, r)
	}
	if conflicts := m.RegionsInRange(r); len(conflicts) > 0 {
		return fmt.Errorf("%w: %+v overlaps region anchored at %+v",
			ErrMergeConflict, r, conflicts[0].Anchor)
	}

	region := &MergeRegion{Anchor: r.TopLeft(), Range: r}
	m.anchors[region.Anchor] = region
	for row := r.StartRow; row <= r.EndRow; row++ {
		m.byRow[row] = append(m.byRow[row], region)
	}
	return nil
}

// Unmerge removes the region covering c, if any.
// Returns true if a region was removed.
func (m *MergedCellRegistry) Unmerge(c CellCoordinate) bool {
	region := m.Region(c)
	if region == nil {
		return false
	}

	delete(m.anchors, region.Anchor)
	for row := region.Range.StartRow; row <= region.Range.EndRow; row++ {
		bucket := m.byRow[row]
		for i, r := range bucket {
			if r == region {
				m.byRow[row] = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(m.byRow[row]) == 0 {
			delete(m.byRow, row)
		}
	}
	return true
}

// Region returns the region covering c, or nil.
// Every coordinate resolves to at most one region.
func (m *MergedCellRegistry) Region(c CellCoordinate) *MergeRegion {
	for _, region := range m.byRow[c.Row] {
		if region.Range.Contains(c) {
			return region
		}
	}
	return nil
}

// IsMerged reports whether c is covered by any region.
func (m *MergedCellRegistry) IsMerged(c CellCoordinate) bool {
	return m.Region(c) != nil
}

// IsAnchor reports whether c is the top-left cell of a region.
func (m *MergedCellRegistry) IsAnchor(c CellCoordinate) bool {
	_, ok := m.anchors[c]
	return ok
}

// RegionsInRange returns every region intersecting r, in no
// particular order. Used for gridline-gap suppression, border-skip
// logic, and selection expansion.
func (m *MergedCellRegistry) RegionsInRange(r CellRange) []*MergeRegion {
	var out []*MergeRegion

	// Tall query ranges (whole-column selections) would visit more row
	// buckets than there are regions; scan the region set directly.
	if r.RowCount() > len(m.anchors) {
		for _, region := range m.anchors {
			if region.Range.Intersects(r) {
				out = append(out, region)
			}
		}
		return out
	}

	seen := make(map[*MergeRegion]bool)
	for row := r.StartRow; row <= r.EndRow; row++ {
		for _, region := range m.byRow[row] {
			if !seen[region] && region.Range.Intersects(r) {
				seen[region] = true
				out = append(out, region)
			}
		}
	}
	return out
}
