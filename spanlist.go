package gridview

import (
	"fmt"

	"github.com/gogrid/gridview/internal/order"
)

// SpanList tracks the sizes of every row or column along one axis.
//
// All spans share a default size; individual spans can be overridden.
// Overrides are stored sparsely in an order-statistics index, so every
// query is O(log k) in the number of overrides, independent of the
// axis length. This is what keeps a 2^20-row worksheet scrollable:
// memory and query time scale with how much the user customized, not
// with how big the grid is.
//
// Cumulative positions are monotonic non-decreasing in index because
// every span size is strictly positive; SetSize enforces this.
type SpanList struct {
	count       int
	defaultSize float64
	overrides   *order.Tree
}

// NewSpanList creates an axis of count spans, each defaultSize units.
// Panics if count is not in (0, MaxRows] or defaultSize is below
// MinSpanSize; both are construction preconditions, not runtime
// conditions.
func NewSpanList(count int, defaultSize float64) *SpanList {
	if count <= 0 || count > MaxRows {
		panic(fmt.Sprintf("gridview: span count %d out of range (0, %d]", count, MaxRows))
	}
	if defaultSize < MinSpanSize {
		panic(fmt.Sprintf("gridview: default span size %v below minimum %v", defaultSize, MinSpanSize))
	}
	return &SpanList{
		count:       count,
		defaultSize: defaultSize,
		overrides:   order.New(),
	}
}

// Count returns the number of spans on the axis.
func (s *SpanList) Count() int { return s.count }

// DefaultSize returns the shared size of non-overridden spans.
func (s *SpanList) DefaultSize() float64 { return s.defaultSize }

// OverrideCount returns the number of spans with a custom size.
func (s *SpanList) OverrideCount() int { return s.overrides.Len() }

// Size returns the size of span i. Out-of-range indices clamp.
func (s *SpanList) Size(i int) float64 {
	i = clampInt(i, 0, s.count-1)
	if delta, ok := s.overrides.Get(i); ok {
		return s.defaultSize + delta
	}
	return s.defaultSize
}

// Position returns the cumulative offset before span i, i.e. the
// worksheet-space coordinate of the span's leading edge. i clamps to
// [0, Count]; Position(Count) is the total axis extent.
func (s *SpanList) Position(i int) float64 {
	i = clampInt(i, 0, s.count)
	return s.defaultSize*float64(i) + s.overrides.SumBefore(i)
}

// Total returns the total extent of the axis.
func (s *SpanList) Total() float64 {
	return s.Position(s.count)
}

// IndexAt returns the index of the span containing position pos.
// Positions before the axis clamp to 0; positions at or past the end
// clamp to Count-1. A position exactly on a span boundary belongs to
// the following span.
func (s *SpanList) IndexAt(pos float64) int {
	if pos < 0 {
		return 0
	}
	index, prefix, ok := s.overrides.SeekOffset(pos, s.defaultSize)
	if ok {
		return index
	}
	i := int((pos - prefix) / s.defaultSize)
	return clampInt(i, 0, s.count-1)
}

// SetSize overrides the size of span i.
// Non-positive sizes are rejected with ErrSpanSize; the axis is
// unchanged. Indices outside the axis are rejected with ErrIndexRange.
// Setting a span back to exactly the default size removes its
// override.
func (s *SpanList) SetSize(i int, size float64) error {
	if i < 0 || i >= s.count {
		return fmt.Errorf("%w: %d (axis has %d spans)", ErrIndexRange, i, s.count)
	}
	if size <= 0 {
		return fmt.Errorf("%w: %v", ErrSpanSize, size)
	}
	if size == s.defaultSize {
		s.overrides.Delete(i)
		return nil
	}
	s.overrides.Set(i, size-s.defaultSize)
	return nil
}

// ResetSize restores span i to the default size.
// Indices outside the axis are rejected with ErrIndexRange.
func (s *SpanList) ResetSize(i int) error {
	if i < 0 || i >= s.count {
		return fmt.Errorf("%w: %d (axis has %d spans)", ErrIndexRange, i, s.count)
	}
	s.overrides.Delete(i)
	return nil
}

// EachOverride calls fn for every overridden span in index order with
// the span's actual size, until fn returns false.
func (s *SpanList) EachOverride(fn func(i int, size float64) bool) {
	s.overrides.Ascend(func(key int, delta float64) bool {
		return fn(key, s.defaultSize+delta)
	})
}
