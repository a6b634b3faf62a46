package gridview

import "fmt"

// SelectionMode describes what, if anything, is selected.
type SelectionMode int

const (
	// SelectionNone means nothing is selected.
	SelectionNone SelectionMode = iota

	// SelectionSingle means one cell (or one merge region) is
	// selected; anchor and focus coincide.
	SelectionSingle

	// SelectionRange means a rectangular range between anchor and
	// focus is selected.
	SelectionRange
)

// String returns the mode's name.
func (m SelectionMode) String() string {
	switch m {
	case SelectionNone:
		return "none"
	case SelectionSingle:
		return "single"
	case SelectionRange:
		return "range"
	default:
		return "invalid"
	}
}

// SelectionState is a snapshot of the controller, delivered to
// observers after every mutation. Range is the merge-expanded
// selected range; it is the zero CellRange when Mode is
// SelectionNone.
type SelectionState struct {
	Mode   SelectionMode
	Anchor CellCoordinate
	Focus  CellCoordinate
	Range  CellRange
}

// SelectionController owns the anchor/focus selection state of one
// worksheet and keeps it consistent with the merge registry.
//
// Merge awareness:
//   - Selecting a cell inside a merge region selects the region's
//     anchor.
//   - The selected range expands, cascading through chains of
//     overlapping merges, until it fully contains every merge region
//     it intersects.
//   - Moving the focus without extending skips merge interiors,
//     landing on the next region's anchor or the first cell past the
//     merge in the direction of travel. Extending moves do not skip.
//
// Moves clamp to the axis bounds. Every public mutation dispatches
// exactly one synchronous notification to each registered observer.
//
// SelectionController is not safe for concurrent use.
type SelectionController struct {
	rows, cols int
	merges     *MergedCellRegistry
	mode       SelectionMode
	anchor     CellCoordinate
	focus      CellCoordinate
	observers  *observerList
}

// NewSelectionController creates a controller over a rows x cols
// grid. merges may be nil, disabling merge awareness. Panics if
// either dimension is not positive.
func NewSelectionController(rows, cols int, merges *MergedCellRegistry) *SelectionController {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("gridview: selection grid must be positive, got %dx%d", rows, cols))
	}
	return &SelectionController{
		rows:      rows,
		cols:      cols,
		merges:    merges,
		observers: newObserverList(),
	}
}

// Observe registers an observer. The returned handle unregisters it.
func (s *SelectionController) Observe(fn SelectionObserver) ObserverHandle {
	return s.observers.register(fn)
}

// Unobserve removes a previously registered observer.
func (s *SelectionController) Unobserve(h ObserverHandle) {
	s.observers.unregister(h)
}

// Mode returns the current selection mode.
func (s *SelectionController) Mode() SelectionMode { return s.mode }

// Anchor returns the selection anchor. Meaningful only when Mode is
// not SelectionNone.
func (s *SelectionController) Anchor() CellCoordinate { return s.anchor }

// Focus returns the selection focus. Meaningful only when Mode is
// not SelectionNone.
func (s *SelectionController) Focus() CellCoordinate { return s.focus }

// State returns a snapshot of the controller.
func (s *SelectionController) State() SelectionState {
	state := SelectionState{Mode: s.mode, Anchor: s.anchor, Focus: s.focus}
	if r, ok := s.SelectedRange(); ok {
		state.Range = r
	}
	return state
}

// SelectedRange returns the merge-expanded selected range.
// ok is false when nothing is selected.
func (s *SelectionController) SelectedRange() (CellRange, bool) {
	if s.mode == SelectionNone {
		return CellRange{}, false
	}
	return s.expand(NewCellRange(s.anchor, s.focus)), true
}

// SelectCell selects a single cell, resolving merge interiors to
// their region's anchor. Out-of-range coordinates clamp.
func (s *SelectionController) SelectCell(c CellCoordinate) {
	c = s.resolveAnchor(c.Clamp(s.rows, s.cols))
	s.mode = SelectionSingle
	s.anchor = c
	s.focus = c
	s.notify()
}

// ExtendSelection moves the focus to c, keeping the anchor, and
// switches to range mode. With no prior selection the anchor is set
// to c as well. Out-of-range coordinates clamp.
func (s *SelectionController) ExtendSelection(c CellCoordinate) {
	c = c.Clamp(s.rows, s.cols)
	if s.mode == SelectionNone {
		s.anchor = s.resolveAnchor(c)
	}
	s.mode = SelectionRange
	s.focus = c
	s.notify()
}

// Clear deselects everything.
func (s *SelectionController) Clear() {
	s.mode = SelectionNone
	s.anchor = CellCoordinate{}
	s.focus = CellCoordinate{}
	s.notify()
}

// MoveFocus shifts the focus by the given deltas, clamped to the
// grid.
//
// Without extend the move collapses to a single selection at the
// target, skipping over the interior of the merge region the focus
// is leaving: the focus lands on the first cell past the region in
// the direction of travel, or on the target region's anchor if that
// cell is itself merged. With extend the focus moves exactly by the
// deltas and the selection becomes a range; no skipping applies.
func (s *SelectionController) MoveFocus(dRow, dCol int, extend bool) {
	if s.mode == SelectionNone {
		// Nothing to move from; treat as selecting from the origin.
		s.anchor = CellCoordinate{}
		s.focus = CellCoordinate{}
	}

	if extend {
		s.focus = s.focus.Offset(dRow, dCol).Clamp(s.rows, s.cols)
		if s.mode != SelectionRange {
			s.mode = SelectionRange
		}
		s.notify()
		return
	}

	target := s.focus.Offset(dRow, dCol).Clamp(s.rows, s.cols)

	// Leaving a merge region in the direction of travel jumps past
	// its far edge rather than walking its interior.
	if s.merges != nil {
		if from := s.merges.Region(s.focus); from != nil && from.Range.Contains(target) {
			if dRow > 0 {
				target.Row = from.Range.EndRow + 1
			} else if dRow < 0 {
				target.Row = from.Range.StartRow - 1
			}
			if dCol > 0 {
				target.Col = from.Range.EndCol + 1
			} else if dCol < 0 {
				target.Col = from.Range.StartCol - 1
			}
			target = target.Clamp(s.rows, s.cols)
		}
	}

	target = s.resolveAnchor(target)
	s.mode = SelectionSingle
	s.anchor = target
	s.focus = target
	s.notify()
}

// resolveAnchor maps a merge-interior coordinate to its region's
// anchor.
func (s *SelectionController) resolveAnchor(c CellCoordinate) CellCoordinate {
	if s.merges == nil {
		return c
	}
	if region := s.merges.Region(c); region != nil {
		return region.Anchor
	}
	return c
}

// expand grows r until it fully contains every merge region it
// intersects, cascading through chains of overlapping merges.
func (s *SelectionController) expand(r CellRange) CellRange {
	if s.merges == nil {
		return r
	}
	for {
		grown := r
		for _, region := range s.merges.RegionsInRange(r) {
			grown = grown.Union(region.Range)
		}
		if grown == r {
			return r
		}
		r = grown
	}
}

func (s *SelectionController) notify() {
	s.observers.notify(s.State())
}
