package gridview

import "errors"

// Sentinel errors returned by mutating operations. Query methods never
// return errors; out-of-range query inputs clamp to valid bounds.
var (
	// ErrSpanSize is returned by SpanList.SetSize when the requested
	// size is not strictly positive. Invalid sizes are rejected, never
	// silently clamped.
	ErrSpanSize = errors.New("gridview: span size must be positive")

	// ErrIndexRange is returned by mutating operations given an index
	// outside the axis.
	ErrIndexRange = errors.New("gridview: index out of range")

	// ErrMergeConflict is returned by Merge when the requested range
	// overlaps an existing merge region. The registry is unchanged.
	ErrMergeConflict = errors.New("gridview: range overlaps an existing merge region")

	// ErrMergeRange is returned by Merge when the requested range
	// spans a single cell; a merge region must cover at least two.
	ErrMergeRange = errors.New("gridview: merge range must span more than one cell")

	// ErrTileCapacity is returned by TilesForViewport when the
	// viewport needs more tiles than the cache holds. Serving it
	// anyway would evict tiles belonging to the same result set.
	ErrTileCapacity = errors.New("gridview: viewport exceeds tile cache capacity")
)
